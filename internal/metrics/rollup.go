package metrics

import (
	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

// Rollup is the aggregate every breakdown shares. Reach is the sum over
// influencers of each influencer's maximum unit reach inside the group; for a
// single influencer that is reach_max. ReachSum adds every unit's reach.
type Rollup struct {
	Posts                 int     `json:"posts"`
	Impressions           int64   `json:"impressions"`
	Views                 int64   `json:"views"`
	PlatformImpressions   int64   `json:"platform_impressions"`
	Reach                 int64   `json:"reach"`
	ReachSum              int64   `json:"reach_sum"`
	Interactions          int64   `json:"interactions"`
	Likes                 int64   `json:"likes"`
	Comments              int64   `json:"comments"`
	Shares                int64   `json:"shares"`
	Saves                 int64   `json:"saves"`
	LinkClicks            int64   `json:"link_clicks"`
	Conversions           int64   `json:"conversions"`
	QualifiedInteractions int64   `json:"qualified_interactions"`
	Followers             int64   `json:"followers"`
	Cost                  float64 `json:"cost"`
	EngagementRate        float64 `json:"engagement_rate"`
	ReachRate             float64 `json:"reach_rate"`
}

// InfluencerRollup is the per (campaign, influencer) record.
type InfluencerRollup struct {
	Influencer Influencer `json:"influencer"`
	Rollup
}

// Totals is the campaign-wide rollup plus the Big Numbers extras.
type Totals struct {
	Rollup
	Influencers              int      `json:"influencers"`
	EngagementGeneral        float64  `json:"engagement_general"`
	AirScore                 float64  `json:"air_score"`
	Investment               float64  `json:"investment"`
	ReachEstimate            int64    `json:"reach_estimate"`
	ImpressionsEstimate      int64    `json:"impressions_estimate"`
	ReachEstimateDelta       *float64 `json:"reach_estimate_delta_pct"`
	ImpressionsEstimateDelta *float64 `json:"impressions_estimate_delta_pct"`
}

// accumulator builds a Rollup from units while tracking per-influencer
// maximum reach and distinct followers/cost.
type accumulator struct {
	c        counters
	reachSum int64
	posts    int
	maxReach map[uuid.UUID]int64
	members  map[uuid.UUID]Influencer
	order    []uuid.UUID
}

func newAccumulator() *accumulator {
	return &accumulator{
		maxReach: make(map[uuid.UUID]int64),
		members:  make(map[uuid.UUID]Influencer),
	}
}

func (a *accumulator) addMember(inf Influencer) {
	if _, ok := a.members[inf.ID]; ok {
		return
	}
	a.members[inf.ID] = inf
	a.order = append(a.order, inf.ID)
}

func (a *accumulator) addUnit(u unit, inf Influencer) {
	a.addMember(inf)
	a.c.merge(u.c, false)
	a.reachSum += u.c.Reach
	a.posts++
	if u.c.Reach > a.maxReach[inf.ID] {
		a.maxReach[inf.ID] = u.c.Reach
	}
}

func (a *accumulator) rollup() Rollup {
	r := Rollup{
		Posts:               a.posts,
		Impressions:         a.c.Views + a.c.Impressions,
		Views:               a.c.Views,
		PlatformImpressions: a.c.Impressions,
		ReachSum:            a.reachSum,
		Interactions:        a.c.Interactions,
		Likes:               a.c.Likes,
		Comments:            a.c.Comments,
		Shares:              a.c.Shares,
		Saves:               a.c.Saves,
		LinkClicks:          a.c.LinkClicks,
		Conversions:         a.c.Conversions,
	}
	for _, id := range a.order {
		r.Reach += a.maxReach[id]
		r.Followers += nonNegative(a.members[id].Followers)
		r.Cost += a.members[id].Cost
	}
	return r.finish()
}

// finish derives the rates and qualified interactions from the counts.
func (r Rollup) finish() Rollup {
	r.QualifiedInteractions = max(0, r.Interactions-r.Likes)
	r.EngagementRate = percent(r.Interactions, r.Impressions)
	r.ReachRate = percent(r.Reach, r.Followers)
	return r
}

func percent(num, den int64) float64 {
	if den <= 0 {
		return 0
	}
	return domain.Round2(float64(num) / float64(den) * 100)
}

// Influencers returns one rollup per attached influencer in attachment order,
// including influencers without posts.
func Influencers(c Campaign) []InfluencerRollup {
	idx := c.influencerIndex()
	accs := make(map[uuid.UUID]*accumulator, len(c.Influencers))
	for _, inf := range c.Influencers {
		a := newAccumulator()
		a.addMember(inf)
		accs[inf.ID] = a
	}
	for _, u := range units(c.Posts, idx) {
		accs[u.influencerID].addUnit(u, idx[u.influencerID])
	}

	out := make([]InfluencerRollup, 0, len(c.Influencers))
	seen := make(map[uuid.UUID]struct{}, len(c.Influencers))
	for _, inf := range c.Influencers {
		if _, ok := seen[inf.ID]; ok {
			continue
		}
		seen[inf.ID] = struct{}{}
		out = append(out, InfluencerRollup{Influencer: inf, Rollup: accs[inf.ID].rollup()})
	}
	return out
}

// Summarize computes the campaign totals.
func Summarize(c Campaign) Totals {
	idx := c.influencerIndex()
	a := newAccumulator()
	for _, inf := range c.Influencers {
		a.addMember(inf)
	}
	for _, u := range units(c.Posts, idx) {
		a.addUnit(u, idx[u.influencerID])
	}
	r := a.rollup()

	investment := c.TotalInvestment
	if investment <= 0 {
		investment = r.Cost
	}
	return Totals{
		Rollup:                   r,
		Influencers:              len(a.order),
		EngagementGeneral:        percent(r.Interactions, r.Followers),
		AirScore:                 AirScore(c.Influencers),
		Investment:               investment,
		ReachEstimate:            c.ReachEstimate,
		ImpressionsEstimate:      c.ImpressionsEstimate,
		ReachEstimateDelta:       EstimateDelta(r.Reach, c.ReachEstimate),
		ImpressionsEstimateDelta: EstimateDelta(r.Impressions, c.ImpressionsEstimate),
	}
}

// Merge folds rollups of the same influencer coming from different campaigns.
// Counts add up, reach keeps the larger maximum, and rates are recomputed.
// Output order is the first appearance of each influencer.
func Merge(rows ...[]InfluencerRollup) []InfluencerRollup {
	var out []InfluencerRollup
	pos := make(map[uuid.UUID]int)
	for _, set := range rows {
		for _, row := range set {
			i, ok := pos[row.Influencer.ID]
			if !ok {
				pos[row.Influencer.ID] = len(out)
				out = append(out, row)
				continue
			}
			m := &out[i].Rollup
			m.Posts += row.Posts
			m.Impressions += row.Impressions
			m.Views += row.Views
			m.PlatformImpressions += row.PlatformImpressions
			m.Reach = max(m.Reach, row.Reach)
			m.ReachSum += row.ReachSum
			m.Interactions += row.Interactions
			m.Likes += row.Likes
			m.Comments += row.Comments
			m.Shares += row.Shares
			m.Saves += row.Saves
			m.LinkClicks += row.LinkClicks
			m.Conversions += row.Conversions
			m.Cost += row.Cost
		}
	}
	for i := range out {
		out[i].Rollup = out[i].Rollup.finish()
	}
	return out
}
