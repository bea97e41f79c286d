package metrics

import (
	"cmp"
	"slices"
	"strings"

	"air-relatorios/internal/domain"
)

// Value reads kpi off the rollup.
func (r Rollup) Value(k KPI) float64 {
	switch k {
	case KPIImpressions:
		return float64(r.Impressions)
	case KPIViews:
		return float64(r.Views)
	case KPIReach:
		return float64(r.Reach)
	case KPIInteractions:
		return float64(r.Interactions)
	case KPILikes:
		return float64(r.Likes)
	case KPIComments:
		return float64(r.Comments)
	case KPIShares:
		return float64(r.Shares)
	case KPISaves:
		return float64(r.Saves)
	case KPILinkClicks:
		return float64(r.LinkClicks)
	case KPIConversions:
		return float64(r.Conversions)
	case KPIPosts:
		return float64(r.Posts)
	case KPIFollowers:
		return float64(r.Followers)
	case KPIQualifiedInteractions:
		return float64(r.QualifiedInteractions)
	case KPIEngagementRate:
		return r.EngagementRate
	case KPIReachRate:
		return r.ReachRate
	}
	return 0
}

// PostRow is a single post with its own rates, used by the scatter and the
// ranked post list.
type PostRow struct {
	Post       Post       `json:"post"`
	Influencer Influencer `json:"influencer"`
	Rollup
}

// Posts returns one row per post of a known influencer, in input order.
// Stories screens are not collapsed here.
func Posts(c Campaign) []PostRow {
	idx := c.influencerIndex()
	out := make([]PostRow, 0, len(c.Posts))
	for _, p := range c.Posts {
		inf, ok := idx[p.InfluencerID]
		if !ok {
			continue
		}
		a := newAccumulator()
		a.addUnit(unit{influencerID: p.InfluencerID, format: p.Format, c: countersOf(p.Metrics)}, inf)
		out = append(out, PostRow{Post: p, Influencer: inf, Rollup: a.rollup()})
	}
	return out
}

type rankable interface {
	InfluencerRollup | PostRow
}

func rankKey[T rankable](row T) (Rollup, Influencer) {
	switch r := any(row).(type) {
	case InfluencerRollup:
		return r.Rollup, r.Influencer
	case PostRow:
		return r.Rollup, r.Influencer
	}
	return Rollup{}, Influencer{}
}

// Rank sorts a copy of rows by kpi descending, then followers descending,
// then display name ascending, and keeps the first n (all when n <= 0).
func Rank[T rankable](rows []T, k KPI, n int) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		ra, ia := rankKey(a)
		rb, ib := rankKey(b)
		if c := cmp.Compare(rb.Value(k), ra.Value(k)); c != 0 {
			return c
		}
		if c := cmp.Compare(ib.Followers, ia.Followers); c != 0 {
			return c
		}
		return strings.Compare(ia.DisplayName, ib.DisplayName)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterPosts keeps rows matching every non-empty criterion.
func FilterPosts(rows []PostRow, format domain.Format, tier domain.Tier, network string) []PostRow {
	out := make([]PostRow, 0, len(rows))
	for _, r := range rows {
		if format != "" && r.Post.Format != format {
			continue
		}
		if tier != "" && r.Influencer.Tier != tier {
			continue
		}
		if network != "" && !strings.EqualFold(r.Influencer.Network, network) {
			continue
		}
		out = append(out, r)
	}
	return out
}
