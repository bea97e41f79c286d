package profiles

import (
	"encoding/json"
	"strings"
	"time"

	"air-relatorios/internal/domain"
)

// Profile is the normalised answer of a profile lookup.
type Profile struct {
	ProfileID      string  `json:"profile_id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Network        string  `json:"network"`
	Picture        string  `json:"picture"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
}

type profileResponse struct {
	ProfileID        json.RawMessage `json:"profile_id"`
	ExtraInformation struct {
		Profile struct {
			Followers      int64   `json:"followers"`
			Picture        string  `json:"picture"`
			EngagementRate float64 `json:"engagement_rate"`
			Network        string  `json:"network"`
			Username       string  `json:"username"`
			Name           string  `json:"name"`
		} `json:"profile"`
	} `json:"extra_information"`
}

func (r profileResponse) toProfile() Profile {
	p := r.ExtraInformation.Profile
	return Profile{
		ProfileID:      strings.Trim(string(r.ProfileID), `"`),
		Username:       p.Username,
		Name:           p.Name,
		Network:        p.Network,
		Picture:        p.Picture,
		Followers:      p.Followers,
		EngagementRate: domain.NormalizeEngagement(p.EngagementRate),
	}
}

type Counters struct {
	Views        int64 `json:"views"`
	Likes        int64 `json:"likes"`
	Comments     int64 `json:"comments"`
	Shares       int64 `json:"shares"`
	Saves        int64 `json:"saves"`
	Reach        int64 `json:"reach"`
	Impressions  int64 `json:"impressions"`
	Interactions int64 `json:"interactions"`
}

// Metrics maps the counters onto a post's metric set. Interactions fall back
// to the sum of the engagement counters when the API leaves them out.
func (c Counters) Metrics() domain.PostMetrics {
	interactions := c.Interactions
	if interactions == 0 {
		interactions = c.Likes + c.Comments + c.Shares + c.Saves
	}
	return domain.PostMetrics{
		Views:         c.Views,
		Reach:         c.Reach,
		Interactions:  interactions,
		Impressions:   c.Impressions,
		Likes:         c.Likes,
		CommentsCount: c.Comments,
		Shares:        c.Shares,
		Saves:         c.Saves,
	}
}

type PostItem struct {
	PostID    string   `json:"post_id"`
	Type      string   `json:"type"`
	PostedAt  string   `json:"posted_at"`
	Caption   string   `json:"caption"`
	Counters  Counters `json:"counters"`
	Permalink string   `json:"permalink"`
	Shortcode string   `json:"shortcode"`
	Thumbnail string   `json:"thumbnail"`
}

// ShortcodeID is the id comparable with domain.ExtractPostID of a link.
func (p PostItem) ShortcodeID() string {
	if id := domain.ExtractPostID(p.Permalink); id != "" {
		return id
	}
	return domain.ExtractPostIDOrCode(p.Shortcode)
}

// PostedTime parses PostedAt, nil when absent or unreadable.
func (p PostItem) PostedTime() *time.Time {
	if p.PostedAt == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, p.PostedAt); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := domain.ParseDateFlex(p.PostedAt); err == nil {
		return &t
	}
	return nil
}

type PostsPage struct {
	Items       []PostItem `json:"items"`
	Count       int        `json:"count"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
}

type PostFilter struct {
	ProfileID string
	Start     time.Time
	End       time.Time
	PostTypes []string
	Text      string
	Page      int
}
