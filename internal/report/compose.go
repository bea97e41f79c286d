// Package report composes per-page report payloads from a campaign graph.
// The web UI, public share links and exports all consume the same payloads.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// CommentSampleSize bounds the comment list on the comments page.
const CommentSampleSize = 20

// MaxTopContents is the size of the Top Performance podium.
const MaxTopContents = domain.MaxTopContents

// Input is everything a report is composed from, read in one pass.
type Input struct {
	Campaign      store.Campaign
	Client        store.Client
	Edges         []store.CampaignInfluencerDetail
	Posts         []store.Post
	Insights      []store.Insight
	CommentCounts []store.CategoryCount
	CommentSample []store.Comment
}

// Composer holds the projection of one Input under one set of Options.
type Composer struct {
	in   Input
	opts Options
	full metrics.Campaign
	proj metrics.Campaign
}

func NewComposer(in Input, opts Options) *Composer {
	full := Project(in.Campaign, in.Edges, in.Posts)
	return &Composer{
		in:   in,
		opts: opts,
		full: full,
		proj: full.FilterByDate(opts.Start, opts.End),
	}
}

// Orphans reports posts whose influencer is not attached to the campaign.
func (c *Composer) Orphans() []uuid.UUID {
	return c.full.Orphans()
}

// Projection is the date-filtered engine input.
func (c *Composer) Projection() metrics.Campaign {
	return c.proj
}

// Header describes the campaign and the active filter.
func (c *Composer) Header() Header {
	return Header{
		CampaignID: c.in.Campaign.ID,
		Title:      c.in.Campaign.Name,
		Client:     c.in.Client.Name,
		Objective:  c.in.Campaign.Objective,
		StartDate:  c.in.Campaign.StartDate,
		EndDate:    c.in.Campaign.EndDate,
		FilterFrom: c.opts.Start,
		FilterTo:   c.opts.End,
		DataMode:   c.in.Campaign.DataMode,
		IsAON:      c.in.Campaign.IsAON,
	}
}

// Compose builds the payload of one page.
func (c *Composer) Compose(page domain.Page) (Payload, error) {
	p := Payload{Page: page, Header: c.Header(), Insights: c.insights(page)}
	switch page {
	case domain.PageBigNumbers:
		p.Data = c.bigNumbers()
	case domain.PageGeneralAnalysis:
		p.Data = c.generalAnalysis()
	case domain.PageAONView:
		p.Data = c.aonView()
	case domain.PageKPIsInfluencer:
		p.Data = c.kpisInfluencer()
	case domain.PageTopPerformance:
		p.Data = c.topPerformance()
	case domain.PageInfluencerList:
		p.Data = c.influencerList()
	case domain.PageComments:
		p.Data = c.comments()
	case domain.PageGlossary:
		terms, err := Glossary()
		if err != nil {
			return Payload{}, err
		}
		p.Data = GlossaryPage{Terms: terms}
	default:
		return Payload{}, fmt.Errorf("unknown report page %q: %w", page, domain.ErrBadInput)
	}
	return p, nil
}

// ComposeAll renders every page the allowed list permits, in render order.
func (c *Composer) ComposeAll(allowed []string) ([]Payload, error) {
	pages := AllowedPages(allowed)
	out := make([]Payload, 0, len(pages))
	for _, page := range pages {
		p, err := c.Compose(page)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Composer) insights(page domain.Page) []InsightView {
	var out []InsightView
	for _, in := range c.in.Insights {
		if in.Page != string(page) || !in.Active {
			continue
		}
		out = append(out, NewInsightView(in))
	}
	return out
}

func (c *Composer) bigNumbers() BigNumbers {
	totals := metrics.Summarize(c.proj)
	formats := metrics.ByFormat(c.proj, c.opts.KPI)
	radar := make([]RadarPoint, 0, len(formats))
	for _, f := range formats {
		radar = append(radar, RadarPoint{
			Format:              f.Format,
			ReachRate:           f.ReachRate,
			EngagementEffective: f.EngagementRate,
		})
	}
	return BigNumbers{
		Totals:              totals,
		EngagementEffective: totals.EngagementRate,
		EngagementGeneral:   totals.EngagementGeneral,
		ReachRate:           totals.ReachRate,
		KPI:                 c.opts.KPI,
		TierDistribution:    metrics.ByTier(c.proj, c.opts.KPI),
		FormatRadar:         radar,
		Notes:               c.in.Campaign.Notes,
	}
}

func (c *Composer) generalAnalysis() GeneralAnalysis {
	out := GeneralAnalysis{
		KPI:        c.opts.KPI,
		LineRate:   c.opts.LineRate,
		TierSeries: c.opts.TierSeries,
	}
	for _, f := range metrics.ByFormat(c.proj, c.opts.KPI) {
		out.FormatCombo = append(out.FormatCombo, ComboPoint{
			Label: string(f.Format),
			Bar:   f.Value(c.opts.KPI),
			Line:  f.Value(c.opts.LineRate),
		})
	}
	for _, t := range metrics.ByTier(c.proj, c.opts.KPI) {
		point := ComboPoint{Label: string(t.Tier), Bar: t.Value(c.opts.KPI)}
		switch c.opts.TierSeries {
		case TierSeriesAvgRate:
			point.Line = t.AvgEngagement
		case TierSeriesPosts:
			point.Line = float64(t.Posts)
		default:
			point.Line = float64(t.Influencers)
		}
		out.TierCombo = append(out.TierCombo, point)
	}
	return out
}

func (c *Composer) aonView() AONView {
	if !c.proj.IsAON {
		return AONView{Daily: []metrics.DayPoint{}, Monthly: []metrics.MonthPoint{}}
	}
	days := metrics.Daily(c.proj, c.opts.Start, c.opts.End)
	daily := slices.Collect(days)
	if daily == nil {
		daily = []metrics.DayPoint{}
	}
	monthly := metrics.Monthly(slices.Values(daily))
	if monthly == nil {
		monthly = []metrics.MonthPoint{}
	}
	return AONView{Enabled: true, Daily: daily, Monthly: monthly}
}

func (c *Composer) kpisInfluencer() KPIsInfluencer {
	rows := metrics.Influencers(c.proj)
	out := KPIsInfluencer{
		KPI:            c.opts.KPI,
		LineRate:       c.opts.LineRate,
		Ratio:          c.opts.Ratio,
		CostEfficiency: metrics.CostEfficiency(rows, c.opts.Ratio),
	}
	for _, r := range metrics.Rank(rows, c.opts.KPI, c.opts.TopN) {
		out.Top = append(out.Top, InfluencerBar{
			Influencer: r.Influencer,
			Value:      r.Value(c.opts.KPI),
			Line:       r.Value(c.opts.LineRate),
		})
	}
	for _, r := range metrics.Rank(rows, metrics.KPILinkClicks, c.opts.TopN) {
		if r.LinkClicks == 0 {
			continue
		}
		out.Traffic = append(out.Traffic, TrafficPoint{
			Influencer: r.Influencer,
			LinkClicks: r.LinkClicks,
			Followers:  r.Influencer.Followers,
		})
	}
	return out
}

func (c *Composer) topPerformance() TopPerformance {
	rows := metrics.Posts(c.proj)
	out := TopPerformance{
		KPI:     c.opts.KPI,
		Top:     c.topSlots(),
		Scatter: make([]ScatterPoint, 0, len(rows)),
		Ranked:  metrics.Rank(metrics.FilterPosts(rows, c.opts.Format, c.opts.Tier, c.opts.Network), c.opts.KPI, c.opts.TopN),
	}
	for _, r := range rows {
		out.Scatter = append(out.Scatter, ScatterPoint{
			PostID:         r.Post.ID,
			Influencer:     r.Influencer.DisplayName,
			Tier:           r.Influencer.Tier,
			ReachRate:      r.ReachRate,
			EngagementRate: r.EngagementRate,
			Views:          r.Views,
		})
	}
	return out
}

// topSlots trusts the curated picks when present, resolving each against
// the whole campaign so a date filter never marks a pick stale. Without
// curated picks the best posts by KPI fill the podium.
func (c *Composer) topSlots() []TopSlot {
	live := make(map[string]metrics.PostRow)
	for _, r := range metrics.Posts(c.full) {
		live[r.Post.ID.String()] = r
	}

	curated := slices.Clone(c.in.Campaign.TopContents.V)
	if len(curated) > 0 {
		slices.SortStableFunc(curated, func(a, b domain.TopContent) int { return cmp.Compare(a.Slot, b.Slot) })
		out := make([]TopSlot, 0, len(curated))
		for _, tc := range curated {
			slot := TopSlot{Slot: tc.Slot, PostID: tc.PostID, Description: tc.Description, Snapshot: tc.Snapshot}
			if r, ok := live[tc.PostID]; ok {
				slot.Live = &r
			} else {
				slot.Stale = true
			}
			out = append(out, slot)
		}
		return out
	}

	picked := metrics.Rank(metrics.Posts(c.proj), c.opts.KPI, MaxTopContents)
	out := make([]TopSlot, 0, len(picked))
	for i, r := range picked {
		out = append(out, TopSlot{
			Slot:     i + 1,
			PostID:   r.Post.ID.String(),
			Auto:     true,
			Snapshot: Snapshot(r),
			Live:     &r,
		})
	}
	return out
}

// Snapshot freezes a post row for a Top-3 pick.
func Snapshot(r metrics.PostRow) *domain.PostSnapshot {
	return &domain.PostSnapshot{
		InfluencerID:    r.Influencer.ID.String(),
		InfluencerName:  r.Influencer.DisplayName,
		Handle:          r.Influencer.Handle,
		Network:         r.Influencer.Network,
		Format:          r.Post.Format,
		Permalink:       r.Post.Permalink,
		Thumbnail:       r.Post.Thumbnail,
		PublicationDate: r.Post.Date,
		Metrics:         r.Post.Metrics,
	}
}

func (c *Composer) influencerList() InfluencerList {
	columns := c.in.Campaign.CustomColumns.V
	if len(columns) > domain.MaxCustomColumns {
		columns = columns[:domain.MaxCustomColumns]
	}
	if columns == nil {
		columns = []string{}
	}
	out := InfluencerList{KPI: c.opts.KPI, CustomColumns: columns}

	for _, r := range metrics.Rank(metrics.Influencers(c.proj), c.opts.KPI, 0) {
		row := InfluencerListRow{InfluencerRollup: r, CustomValues: make([]string, len(columns))}
		for i := range columns {
			if i == 0 {
				row.CustomValues[i] = r.Influencer.CustomCol1
			} else {
				row.CustomValues[i] = r.Influencer.CustomCol2
			}
		}
		row.CPM, row.CPE, _, _ = metrics.Ratios(r.Rollup)
		out.Rows = append(out.Rows, row)
	}

	if c.in.Campaign.ShowCategoryTab {
		pos := make(map[string]int)
		for _, row := range out.Rows {
			cat := row.Influencer.Category
			i, ok := pos[cat]
			if !ok {
				i = len(out.Groups)
				pos[cat] = i
				out.Groups = append(out.Groups, CategoryGroup{Category: cat})
			}
			out.Groups[i].Rows = append(out.Groups[i].Rows, row)
		}
		slices.SortStableFunc(out.Groups, func(a, b CategoryGroup) int {
			return cmp.Compare(a.Category, b.Category)
		})
	}
	return out
}

func (c *Composer) comments() Comments {
	out := Comments{
		Categories: c.in.Campaign.CommentCategories.V,
		Counts:     make([]CategoryCount, 0, len(c.in.CommentCounts)),
		Sample:     c.in.CommentSample,
	}
	if out.Categories == nil {
		out.Categories = []domain.CommentCategory{}
	}
	if out.Sample == nil {
		out.Sample = []store.Comment{}
	}
	for _, cc := range c.in.CommentCounts {
		out.Total += cc.Count
	}
	for _, cc := range c.in.CommentCounts {
		pct := 0.0
		if out.Total > 0 {
			pct = domain.Round2(float64(cc.Count) / float64(out.Total) * 100)
		}
		out.Counts = append(out.Counts, CategoryCount{Category: cc.Category, Count: cc.Count, Percent: pct})
	}
	return out
}

// FormatCount renders an integer with dot thousands separators.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
