// Package metrics turns a campaign graph (influencers attached to a campaign
// and the posts they published) into aggregated numbers. Every function here
// is pure: the same input always yields the same output and nothing is
// mutated in place.
package metrics

import (
	"fmt"
	"strings"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

// Influencer is one attached influencer as the engine sees it: the base
// record merged with the per-campaign edge.
type Influencer struct {
	ID             uuid.UUID   `json:"id"`
	EdgeID         uuid.UUID   `json:"edge_id"`
	DisplayName    string      `json:"display_name"`
	Handle         string      `json:"handle"`
	Network        string      `json:"network"`
	Followers      int64       `json:"followers"`
	AirScore       float64     `json:"air_score"`
	Tier           domain.Tier `json:"tier"`
	Cost           float64     `json:"cost"`
	Category       string      `json:"category,omitempty"`
	CustomCol1     string      `json:"custom_col_1,omitempty"`
	CustomCol2     string      `json:"custom_col_2,omitempty"`
	SpecificValues []string    `json:"specific_values,omitempty"`
	PhotoURL       string      `json:"photo_url,omitempty"`
}

// Post is a single published piece of content. A nil Date means the date was
// missing or unparseable; such posts count in totals but not in time series.
type Post struct {
	ID           uuid.UUID          `json:"id"`
	InfluencerID uuid.UUID          `json:"influencer_id"`
	Format       domain.Format      `json:"format"`
	Platform     string             `json:"platform,omitempty"`
	Date         *time.Time         `json:"date,omitempty"`
	Permalink    string             `json:"permalink,omitempty"`
	Thumbnail    string             `json:"thumbnail,omitempty"`
	Caption      string             `json:"caption,omitempty"`
	Metrics      domain.PostMetrics `json:"metrics"`
}

// Campaign is the in-memory projection the engine aggregates.
type Campaign struct {
	ID                  uuid.UUID
	Name                string
	StartDate           *time.Time
	EndDate             *time.Time
	IsAON               bool
	ReachEstimate       int64
	ImpressionsEstimate int64
	TotalInvestment     float64
	Influencers         []Influencer
	Posts               []Post
}

// Orphans lists posts that reference an influencer missing from the
// projection. Aggregations skip them.
func (c Campaign) Orphans() []uuid.UUID {
	known := make(map[uuid.UUID]struct{}, len(c.Influencers))
	for _, inf := range c.Influencers {
		known[inf.ID] = struct{}{}
	}
	var out []uuid.UUID
	for _, p := range c.Posts {
		if _, ok := known[p.InfluencerID]; !ok {
			out = append(out, p.ID)
		}
	}
	return out
}

// FilterByDate keeps the posts published within [start, end]. Nil bounds are
// open. With any bound set, undated posts are dropped.
func (c Campaign) FilterByDate(start, end *time.Time) Campaign {
	if start == nil && end == nil {
		return c
	}
	out := c
	out.Posts = make([]Post, 0, len(c.Posts))
	for _, p := range c.Posts {
		if p.Date == nil {
			continue
		}
		d := domain.Day(*p.Date)
		if start != nil && d.Before(domain.Day(*start)) {
			continue
		}
		if end != nil && d.After(domain.Day(*end)) {
			continue
		}
		out.Posts = append(out.Posts, p)
	}
	return out
}

func (c Campaign) influencerIndex() map[uuid.UUID]Influencer {
	idx := make(map[uuid.UUID]Influencer, len(c.Influencers))
	for _, inf := range c.Influencers {
		idx[inf.ID] = inf
	}
	return idx
}

// KPI names a metric a chart or ranking can be driven by.
type KPI string

const (
	KPIImpressions           KPI = "impressions"
	KPIViews                 KPI = "views"
	KPIReach                 KPI = "reach"
	KPIInteractions          KPI = "interactions"
	KPILikes                 KPI = "likes"
	KPIComments              KPI = "comments"
	KPIShares                KPI = "shares"
	KPISaves                 KPI = "saves"
	KPILinkClicks            KPI = "link_clicks"
	KPIConversions           KPI = "conversions"
	KPIPosts                 KPI = "posts"
	KPIFollowers             KPI = "followers"
	KPIQualifiedInteractions KPI = "qualified_interactions"
	KPIEngagementRate        KPI = "engagement_rate"
	KPIReachRate             KPI = "reach_rate"
)

var KPIs = []KPI{
	KPIImpressions, KPIViews, KPIReach, KPIInteractions, KPILikes, KPIComments, KPIShares,
	KPISaves, KPILinkClicks, KPIConversions, KPIPosts, KPIFollowers, KPIQualifiedInteractions,
	KPIEngagementRate, KPIReachRate,
}

// ParseKPI returns fallback for an empty string.
func ParseKPI(s string, fallback KPI) (KPI, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	for _, k := range KPIs {
		if KPI(s) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kpi %q: %w", s, domain.ErrBadInput)
}

// IsRate reports whether k is a percentage rather than a count.
func (k KPI) IsRate() bool {
	return k == KPIEngagementRate || k == KPIReachRate
}
