package domain

import (
	"time"
)

// PostMetrics is the counter set collected for one post. Missing counters are
// zero; the two coupon fields are optional.
type PostMetrics struct {
	Views             int64   `json:"views"`
	Reach             int64   `json:"reach"`
	Interactions      int64   `json:"interactions"`
	Impressions       int64   `json:"impressions"`
	Likes             int64   `json:"likes"`
	CommentsCount     int64   `json:"comments_count"`
	Shares            int64   `json:"shares"`
	Saves             int64   `json:"saves"`
	LinkClicks        int64   `json:"link_clicks"`
	CouponCode        *string `json:"coupon_code,omitempty"`
	CouponConversions *int64  `json:"coupon_conversions,omitempty"`
}

// TotalImpressions is views plus platform impressions.
func (m PostMetrics) TotalImpressions() int64 {
	return m.Views + m.Impressions
}

// Conversions returns the coupon conversions or zero.
func (m PostMetrics) Conversions() int64 {
	if m.CouponConversions == nil {
		return 0
	}
	return *m.CouponConversions
}

// CommentCategory is one of the up to ten categories a campaign classifies
// comments into.
type CommentCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MaxCommentCategories bounds campaign.comment_categories.
const MaxCommentCategories = 10

// SpecificClassification is a campaign scoped axis with enumerated values.
type SpecificClassification struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// MaxSpecificClassifications bounds campaign.specific_classifications.
const MaxSpecificClassifications = 3

// MaxCustomColumns bounds campaign.custom_columns.
const MaxCustomColumns = 2

// MaxTopContents is the number of curated top performance slots.
const MaxTopContents = 3

// PostSnapshot freezes what a curated post looked like when it was picked.
type PostSnapshot struct {
	InfluencerID    string      `json:"influencer_id"`
	InfluencerName  string      `json:"influencer_name"`
	Handle          string      `json:"handle"`
	Network         string      `json:"network"`
	Format          Format      `json:"format"`
	Permalink       string      `json:"permalink,omitempty"`
	Thumbnail       string      `json:"thumbnail,omitempty"`
	PublicationDate *time.Time  `json:"publication_date,omitempty"`
	Metrics         PostMetrics `json:"metrics"`
}

// TopContent is one curated Top-3 slot: a reference into the campaign graph
// plus the snapshot taken at selection time.
type TopContent struct {
	Slot        int           `json:"slot"`
	PostID      string        `json:"post_id"`
	Description string        `json:"description"`
	Snapshot    *PostSnapshot `json:"snapshot,omitempty"`
	SelectedAt  time.Time     `json:"selected_at"`
}
