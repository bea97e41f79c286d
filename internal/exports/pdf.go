package exports

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/report"

	"github.com/go-pdf/fpdf"
)

var pageTitles = map[domain.Page]string{
	domain.PageBigNumbers:      "Big Numbers",
	domain.PageGeneralAnalysis: "Análise Geral",
	domain.PageAONView:         "Visão AON",
	domain.PageKPIsInfluencer:  "KPIs por Influenciador",
	domain.PageTopPerformance:  "Top Performance",
	domain.PageInfluencerList:  "Lista de Influenciadores",
	domain.PageComments:        "Comentários",
	domain.PageGlossary:        "Glossário",
}

const (
	pdfMargin    = 15.0
	pdfLine      = 6.0
	pdfMaxRows   = 40
	pdfBodyWidth = 180.0
)

// pdfDoc wraps fpdf with the core font translator so accented Portuguese
// renders in cp1252.
type pdfDoc struct {
	f  *fpdf.Fpdf
	tr func(string) string
}

func newPDFDoc(title string) *pdfDoc {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	f.SetAutoPageBreak(true, pdfMargin)
	f.SetTitle(title, true)
	f.SetCreator("AIR Relatórios", true)
	return &pdfDoc{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
}

func (d *pdfDoc) heading(text string, size float64) {
	d.f.SetFont("Helvetica", "B", size)
	d.f.MultiCell(pdfBodyWidth, size*0.5, d.tr(text), "", "L", false)
	d.f.Ln(2)
}

func (d *pdfDoc) text(s string) {
	d.f.SetFont("Helvetica", "", 10)
	d.f.MultiCell(pdfBodyWidth, pdfLine-1, d.tr(s), "", "L", false)
}

func (d *pdfDoc) kv(key, value string) {
	d.f.SetFont("Helvetica", "B", 10)
	d.f.CellFormat(70, pdfLine, d.tr(key), "", 0, "L", false, 0, "")
	d.f.SetFont("Helvetica", "", 10)
	d.f.CellFormat(pdfBodyWidth-70, pdfLine, d.tr(value), "", 1, "L", false, 0, "")
}

// table draws a header row and body rows with equal column widths except the
// first, which takes the remaining space.
func (d *pdfDoc) table(header []string, rows [][]string) {
	if len(header) == 0 {
		return
	}
	first := pdfBodyWidth * 0.34
	if len(header) == 1 {
		first = pdfBodyWidth
	}
	other := 0.0
	if len(header) > 1 {
		other = (pdfBodyWidth - first) / float64(len(header)-1)
	}
	width := func(i int) float64 {
		if i == 0 {
			return first
		}
		return other
	}
	d.f.SetFont("Helvetica", "B", 8)
	d.f.SetFillColor(221, 235, 247)
	for i, h := range header {
		d.f.CellFormat(width(i), pdfLine, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.f.Ln(-1)
	d.f.SetFont("Helvetica", "", 8)
	for n, row := range rows {
		if n == pdfMaxRows {
			d.text(fmt.Sprintf("... %d linhas omitidas", len(rows)-pdfMaxRows))
			break
		}
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			d.f.CellFormat(width(i), pdfLine, d.tr(truncate(cell, 40)), "1", 0, align, false, 0, "")
		}
		d.f.Ln(-1)
	}
	d.f.Ln(3)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func pct(f float64) string {
	return strconv.FormatFloat(domain.Round2(f), 'f', 2, 64) + "%"
}

func money(f float64) string {
	return "R$ " + strconv.FormatFloat(domain.Round2(f), 'f', 2, 64)
}

func num(f float64) string {
	return strconv.FormatFloat(domain.Round2(f), 'f', 2, 64)
}

// WritePDF renders the report pages as a printable document. Charts become
// tables; insights are printed with their markdown source.
func WritePDF(w io.Writer, pages []report.Payload) error {
	title := "Relatório"
	if len(pages) > 0 {
		title = pages[0].Header.Title
	}
	d := newPDFDoc(title)

	for _, p := range pages {
		d.f.AddPage()
		d.heading(title, 16)
		if p.Header.Client != "" {
			d.text("Cliente: " + p.Header.Client)
		}
		d.heading(pageTitle(p.Page), 13)
		writePageData(d, p.Data)
		if len(p.Insights) > 0 {
			d.heading("Insights", 11)
			for _, in := range p.Insights {
				d.f.SetFont("Helvetica", "B", 10)
				d.f.MultiCell(pdfBodyWidth, pdfLine, d.tr(in.Title), "", "L", false)
				d.text(in.Body)
				d.f.Ln(2)
			}
		}
	}
	if len(pages) == 0 {
		d.f.AddPage()
		d.heading(title, 16)
	}

	if err := d.f.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return d.f.Output(w)
}

func pageTitle(p domain.Page) string {
	if t, ok := pageTitles[p]; ok {
		return t
	}
	return string(p)
}

func writePageData(d *pdfDoc, data any) {
	switch v := data.(type) {
	case report.BigNumbers:
		t := v.Totals
		d.kv("Influenciadores", strconv.Itoa(t.Influencers))
		d.kv("Posts", strconv.Itoa(t.Posts))
		d.kv("Impressões", report.FormatCount(t.Impressions))
		d.kv("Alcance", report.FormatCount(t.Reach))
		d.kv("Interações", report.FormatCount(t.Interactions))
		d.kv("Engajamento efetivo", pct(v.EngagementEffective))
		d.kv("Engajamento geral", pct(v.EngagementGeneral))
		d.kv("Taxa de alcance", pct(v.ReachRate))
		d.kv("Investimento", money(t.Investment))
		d.kv("AIR Score", num(t.AirScore))
		d.f.Ln(3)
		rows := make([][]string, 0, len(v.TierDistribution))
		for _, r := range v.TierDistribution {
			rows = append(rows, []string{string(r.Tier), strconv.Itoa(r.Influencers), num(r.Rollup.Value(v.KPI)), pct(r.Share)})
		}
		d.table([]string{"Tier", "Influenciadores", string(v.KPI), "Participação"}, rows)
		if v.Notes != "" {
			d.text(v.Notes)
		}
	case report.GeneralAnalysis:
		d.table([]string{"Formato", string(v.KPI), string(v.LineRate)}, comboRows(v.FormatCombo))
		d.table([]string{"Tier", v.TierSeries, string(v.LineRate)}, comboRows(v.TierCombo))
	case report.AONView:
		if !v.Enabled {
			d.text("Campanha sem visão always-on.")
			return
		}
		rows := make([][]string, 0, len(v.Monthly))
		for _, m := range v.Monthly {
			rows = append(rows, []string{m.Month, strconv.Itoa(m.Posts), report.FormatCount(m.Impressions),
				report.FormatCount(m.Reach), report.FormatCount(m.Interactions), pct(m.EngagementRate)})
		}
		d.table([]string{"Mês", "Posts", "Impressões", "Alcance", "Interações", "Engajamento"}, rows)
	case report.KPIsInfluencer:
		rows := make([][]string, 0, len(v.Top))
		for _, b := range v.Top {
			rows = append(rows, []string{b.Influencer.DisplayName, num(b.Value), num(b.Line)})
		}
		d.table([]string{"Influenciador", string(v.KPI), string(v.LineRate)}, rows)
		eff := make([][]string, 0, len(v.CostEfficiency))
		for _, e := range v.CostEfficiency {
			eff = append(eff, []string{e.Influencer.DisplayName, money(e.Cost), num(e.CPM), num(e.CPE), num(e.CPI), num(e.CPV)})
		}
		d.table([]string{"Influenciador", "Custo", "CPM", "CPE", "CPI", "CPV"}, eff)
	case report.TopPerformance:
		for _, s := range v.Top {
			label := fmt.Sprintf("#%d", s.Slot)
			switch {
			case s.Live != nil:
				d.kv(label, s.Live.Influencer.DisplayName+" "+s.Live.Post.Permalink)
			case s.Snapshot != nil:
				d.kv(label, s.Snapshot.InfluencerName+" "+s.Snapshot.Permalink)
			default:
				d.kv(label, s.PostID)
			}
			if s.Description != "" {
				d.text(s.Description)
			}
		}
		d.f.Ln(2)
		d.table([]string{"Influenciador", "Formato", string(v.KPI), "Engajamento"}, postRows(v.Ranked, v.KPI))
	case report.InfluencerList:
		rows := make([][]string, 0, len(v.Rows))
		for _, r := range v.Rows {
			rows = append(rows, []string{r.Influencer.DisplayName, string(r.Influencer.Tier),
				report.FormatCount(r.Followers), report.FormatCount(r.Impressions), pct(r.EngagementRate), num(r.CPM), num(r.CPE)})
		}
		d.table([]string{"Influenciador", "Tier", "Seguidores", "Impressões", "Engajamento", "CPM", "CPE"}, rows)
	case report.Comments:
		d.kv("Total de comentários", strconv.Itoa(v.Total))
		rows := make([][]string, 0, len(v.Counts))
		for _, c := range v.Counts {
			rows = append(rows, []string{c.Category, strconv.Itoa(c.Count), pct(c.Percent)})
		}
		d.table([]string{"Categoria", "Comentários", "%"}, rows)
		for _, c := range v.Sample {
			d.text(fmt.Sprintf("@%s: %s", c.Author, strings.TrimSpace(c.Text)))
		}
	case report.GlossaryPage:
		for _, t := range v.Terms {
			d.f.SetFont("Helvetica", "B", 10)
			d.f.MultiCell(pdfBodyWidth, pdfLine, d.tr(t.Term), "", "L", false)
			d.text(t.Definition)
			d.f.Ln(1)
		}
	}
}

func comboRows(points []report.ComboPoint) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Label, num(p.Bar), num(p.Line)})
	}
	return rows
}

func postRows(posts []metrics.PostRow, kpi metrics.KPI) [][]string {
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.Influencer.DisplayName, string(p.Post.Format), num(p.Rollup.Value(kpi)), pct(p.EngagementRate)})
	}
	return rows
}
