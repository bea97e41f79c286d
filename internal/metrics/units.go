package metrics

import (
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

// counters is the additive view of domain.PostMetrics.
type counters struct {
	Views        int64
	Impressions  int64
	Reach        int64
	Interactions int64
	Likes        int64
	Comments     int64
	Shares       int64
	Saves        int64
	LinkClicks   int64
	Conversions  int64
}

func countersOf(m domain.PostMetrics) counters {
	return counters{
		Views:        nonNegative(m.Views),
		Impressions:  nonNegative(m.Impressions),
		Reach:        nonNegative(m.Reach),
		Interactions: nonNegative(m.Interactions),
		Likes:        nonNegative(m.Likes),
		Comments:     nonNegative(m.CommentsCount),
		Shares:       nonNegative(m.Shares),
		Saves:        nonNegative(m.Saves),
		LinkClicks:   nonNegative(m.LinkClicks),
		Conversions:  nonNegative(m.Conversions()),
	}
}

// merge adds o into c. Reach is summed unless maxReach is set.
func (c *counters) merge(o counters, maxReach bool) {
	c.Views += o.Views
	c.Impressions += o.Impressions
	c.Interactions += o.Interactions
	c.Likes += o.Likes
	c.Comments += o.Comments
	c.Shares += o.Shares
	c.Saves += o.Saves
	c.LinkClicks += o.LinkClicks
	c.Conversions += o.Conversions
	if maxReach {
		c.Reach = max(c.Reach, o.Reach)
	} else {
		c.Reach += o.Reach
	}
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// unit is what post_count counts: a non-Stories post, or all the Stories
// screens one influencer published on one day.
type unit struct {
	influencerID uuid.UUID
	format       domain.Format
	date         *time.Time
	c            counters
	posts        []uuid.UUID
}

type storiesKey struct {
	influencerID uuid.UUID
	day          string
}

// units collapses Stories screens per influencer and day. Stories summing
// keeps every counter additive except reach, which takes the maximum.
// Undated Stories screens of one influencer share a single unit. Posts of
// unknown influencers are skipped. Output order follows the first post of
// each unit.
func units(posts []Post, known map[uuid.UUID]Influencer) []unit {
	out := make([]unit, 0, len(posts))
	stories := make(map[storiesKey]int)
	for _, p := range posts {
		if _, ok := known[p.InfluencerID]; !ok {
			continue
		}
		var date *time.Time
		if p.Date != nil {
			d := domain.Day(*p.Date)
			date = &d
		}
		c := countersOf(p.Metrics)

		if p.Format == domain.FormatStories {
			key := storiesKey{influencerID: p.InfluencerID}
			if date != nil {
				key.day = domain.DateKey(*date)
			}
			if i, ok := stories[key]; ok {
				out[i].c.merge(c, true)
				out[i].posts = append(out[i].posts, p.ID)
				continue
			}
			stories[key] = len(out)
		}
		out = append(out, unit{
			influencerID: p.InfluencerID,
			format:       p.Format,
			date:         date,
			c:            c,
			posts:        []uuid.UUID{p.ID},
		})
	}
	return out
}
