package exports

import (
	"fmt"
	"io"

	"air-relatorios/internal/metrics"

	"github.com/xuri/excelize/v2"
)

const (
	sheetBalizadores = "Balizadores"
	sheetSummary     = "Resumo"
)

// WriteBalizadoresXLSX writes the influencer rollup as a workbook with a
// Balizadores sheet and a Resumo sheet holding the campaign totals.
func WriteBalizadoresXLSX(w io.Writer, campaign string, rows []metrics.InfluencerRollup, totals metrics.Totals) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetBalizadores); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheetBalizadores, "A1", &balizadoresColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(balizadoresColumns), 1)
	if err := f.SetCellStyle(sheetBalizadores, "A1", last, header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cpm, cpe, cpi, cpv := metrics.Ratios(r.Rollup)
		values := []any{
			r.Influencer.DisplayName, r.Influencer.Handle, r.Influencer.Network, string(r.Influencer.Tier),
			r.Influencer.Followers, r.Posts, r.Impressions, r.Views, r.Reach, r.ReachSum, r.Interactions, r.QualifiedInteractions,
			r.Likes, r.Comments, r.Shares, r.Saves, r.LinkClicks,
			r.EngagementRate, r.ReachRate, r.Cost, cpm, cpe, cpi, cpv,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetBalizadores, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheetBalizadores, "A", "B", 24); err != nil {
		return err
	}
	if err := f.SetPanes(sheetBalizadores, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summary := [][]any{
		{"Campanha", campaign},
		{"Influenciadores", totals.Influencers},
		{"Posts", totals.Posts},
		{"Impressões", totals.Impressions},
		{"Alcance", totals.Reach},
		{"Interações", totals.Interactions},
		{"Engajamento efetivo (%)", totals.EngagementRate},
		{"Engajamento geral (%)", totals.EngagementGeneral},
		{"Taxa de alcance (%)", totals.ReachRate},
		{"Investimento", totals.Investment},
		{"AIR Score", totals.AirScore},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 28); err != nil {
		return err
	}

	return f.Write(w)
}
