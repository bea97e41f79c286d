package metrics

import (
	"iter"
	"time"

	"air-relatorios/internal/domain"
)

// DayPoint is one day of the always-on series.
type DayPoint struct {
	Date                  time.Time `json:"date"`
	Posts                 int       `json:"posts"`
	Impressions           int64     `json:"impressions"`
	Reach                 int64     `json:"reach"`
	Interactions          int64     `json:"interactions"`
	CumulativeImpressions int64     `json:"cumulative_impressions"`
}

// MonthPoint rolls days up to a calendar month.
type MonthPoint struct {
	Month          string  `json:"month"`
	Days           int     `json:"days"`
	Posts          int     `json:"posts"`
	Impressions    int64   `json:"impressions"`
	Reach          int64   `json:"reach"`
	Interactions   int64   `json:"interactions"`
	EngagementRate float64 `json:"engagement_rate"`
}

// Daily yields one point per day from the campaign start to its end,
// narrowed by the optional filter bounds. Missing campaign bounds fall back
// to the first and last dated post. Non-AON campaigns and undated posts
// produce nothing. Daily reach adds up the reach of each unit that day.
func Daily(c Campaign, start, end *time.Time) iter.Seq[DayPoint] {
	return func(yield func(DayPoint) bool) {
		if !c.IsAON {
			return
		}
		idx := c.influencerIndex()
		buckets := make(map[string]*DayPoint)
		var first, last time.Time
		for _, u := range units(c.Posts, idx) {
			if u.date == nil {
				continue
			}
			d := *u.date
			if first.IsZero() || d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
			key := domain.DateKey(d)
			b, ok := buckets[key]
			if !ok {
				b = &DayPoint{Date: d}
				buckets[key] = b
			}
			b.Posts++
			b.Impressions += u.c.Views + u.c.Impressions
			b.Reach += u.c.Reach
			b.Interactions += u.c.Interactions
		}

		from, to := first, last
		if c.StartDate != nil {
			from = domain.Day(*c.StartDate)
		}
		if c.EndDate != nil {
			to = domain.Day(*c.EndDate)
		}
		if start != nil && domain.Day(*start).After(from) {
			from = domain.Day(*start)
		}
		if end != nil && (to.IsZero() || domain.Day(*end).Before(to)) {
			to = domain.Day(*end)
		}
		if from.IsZero() || to.IsZero() || to.Before(from) {
			return
		}

		var cumulative int64
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			p := DayPoint{Date: day}
			if b, ok := buckets[domain.DateKey(day)]; ok {
				p = *b
			}
			cumulative += p.Impressions
			p.CumulativeImpressions = cumulative
			if !yield(p) {
				return
			}
		}
	}
}

// Monthly groups a daily series by calendar month in sequence order.
func Monthly(days iter.Seq[DayPoint]) []MonthPoint {
	var out []MonthPoint
	for d := range days {
		month := d.Date.Format("2006-01")
		if len(out) == 0 || out[len(out)-1].Month != month {
			out = append(out, MonthPoint{Month: month})
		}
		m := &out[len(out)-1]
		m.Days++
		m.Posts += d.Posts
		m.Impressions += d.Impressions
		m.Reach += d.Reach
		m.Interactions += d.Interactions
	}
	for i := range out {
		out[i].EngagementRate = percent(out[i].Interactions, out[i].Impressions)
	}
	return out
}
