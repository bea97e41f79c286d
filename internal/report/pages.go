package report

import (
	"time"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// Payload is one rendered report page.
type Payload struct {
	Page     domain.Page   `json:"page"`
	Header   Header        `json:"header"`
	Insights []InsightView `json:"insights,omitempty"`
	Data     any           `json:"data"`
}

type Header struct {
	CampaignID uuid.UUID  `json:"campaign_id"`
	Title      string     `json:"title"`
	Client     string     `json:"client"`
	Objective  string     `json:"objective,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	FilterFrom *time.Time `json:"filter_from,omitempty"`
	FilterTo   *time.Time `json:"filter_to,omitempty"`
	DataMode   string     `json:"data_mode"`
	IsAON      bool       `json:"is_aon"`
}

type InsightView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	Source    string    `json:"source"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInsightView renders the markdown body next to the verbatim one.
func NewInsightView(in store.Insight) InsightView {
	return InsightView{
		ID:        in.ID,
		Type:      in.Type,
		Title:     in.Title,
		Body:      in.Body,
		BodyHTML:  RenderMarkdown(in.Body),
		Source:    in.Source,
		Active:    in.Active,
		CreatedAt: in.CreatedAt,
	}
}

type BigNumbers struct {
	Totals              metrics.Totals    `json:"totals"`
	EngagementEffective float64           `json:"engagement_effective"`
	EngagementGeneral   float64           `json:"engagement_general"`
	ReachRate           float64           `json:"reach_rate"`
	KPI                 metrics.KPI       `json:"kpi"`
	TierDistribution    []metrics.TierRow `json:"tier_distribution"`
	FormatRadar         []RadarPoint      `json:"format_radar"`
	Notes               string            `json:"notes"`
}

type RadarPoint struct {
	Format              domain.Format `json:"format"`
	ReachRate           float64       `json:"reach_rate"`
	EngagementEffective float64       `json:"engagement_effective"`
}

type ComboPoint struct {
	Label string  `json:"label"`
	Bar   float64 `json:"bar"`
	Line  float64 `json:"line"`
}

type GeneralAnalysis struct {
	KPI         metrics.KPI  `json:"kpi"`
	LineRate    metrics.KPI  `json:"line_rate"`
	TierSeries  string       `json:"tier_series"`
	FormatCombo []ComboPoint `json:"format_combo"`
	TierCombo   []ComboPoint `json:"tier_combo"`
}

type AONView struct {
	Enabled bool                 `json:"enabled"`
	Daily   []metrics.DayPoint   `json:"daily"`
	Monthly []metrics.MonthPoint `json:"monthly"`
}

type InfluencerBar struct {
	Influencer metrics.Influencer `json:"influencer"`
	Value      float64            `json:"value"`
	Line       float64            `json:"line"`
}

type TrafficPoint struct {
	Influencer metrics.Influencer `json:"influencer"`
	LinkClicks int64              `json:"link_clicks"`
	Followers  int64              `json:"followers"`
}

type KPIsInfluencer struct {
	KPI            metrics.KPI          `json:"kpi"`
	LineRate       metrics.KPI          `json:"line_rate"`
	Ratio          metrics.Ratio        `json:"ratio"`
	Top            []InfluencerBar      `json:"top"`
	CostEfficiency []metrics.Efficiency `json:"cost_efficiency"`
	Traffic        []TrafficPoint       `json:"traffic"`
}

// TopSlot is one curated or auto-picked Top-3 entry. Stale slots point at a
// post that no longer exists and render from the snapshot only.
type TopSlot struct {
	Slot        int                  `json:"slot"`
	PostID      string               `json:"post_id"`
	Description string               `json:"description"`
	Auto        bool                 `json:"auto"`
	Stale       bool                 `json:"stale"`
	Snapshot    *domain.PostSnapshot `json:"snapshot,omitempty"`
	Live        *metrics.PostRow     `json:"live,omitempty"`
}

type ScatterPoint struct {
	PostID         uuid.UUID   `json:"post_id"`
	Influencer     string      `json:"influencer"`
	Tier           domain.Tier `json:"tier"`
	ReachRate      float64     `json:"reach_rate"`
	EngagementRate float64     `json:"engagement_rate"`
	Views          int64       `json:"views"`
}

type TopPerformance struct {
	KPI     metrics.KPI       `json:"kpi"`
	Top     []TopSlot         `json:"top"`
	Scatter []ScatterPoint    `json:"scatter"`
	Ranked  []metrics.PostRow `json:"ranked"`
}

type InfluencerListRow struct {
	metrics.InfluencerRollup
	CustomValues []string `json:"custom_values"`
	CPM          float64  `json:"cpm"`
	CPE          float64  `json:"cpe"`
}

type CategoryGroup struct {
	Category string              `json:"category"`
	Rows     []InfluencerListRow `json:"rows"`
}

type InfluencerList struct {
	KPI           metrics.KPI         `json:"kpi"`
	CustomColumns []string            `json:"custom_columns"`
	Rows          []InfluencerListRow `json:"rows"`
	Groups        []CategoryGroup     `json:"groups,omitempty"`
}

type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type Comments struct {
	Total      int                      `json:"total"`
	Categories []domain.CommentCategory `json:"categories"`
	Counts     []CategoryCount          `json:"counts"`
	Sample     []store.Comment          `json:"sample"`
}

type GlossaryPage struct {
	Terms []Term `json:"terms"`
}
