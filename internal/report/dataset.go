package report

import (
	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
)

// Dataset is the metrics bundle sent to the AI when generating insights: the
// Big Numbers rollup plus the per-post records behind it.
type Dataset struct {
	Campaign    Header                     `json:"campanha"`
	Totals      metrics.Totals             `json:"totais"`
	Formats     []metrics.FormatRow        `json:"por_formato"`
	Tiers       []metrics.TierRow          `json:"por_tier"`
	Influencers []metrics.InfluencerRollup `json:"influenciadores"`
	Monthly     []metrics.MonthPoint       `json:"mensal,omitempty"`
	Top         []TopSlot                  `json:"top_conteudos,omitempty"`
	Posts       []PostRecord               `json:"posts"`
}

// PostRecord is a flat per-post row.
type PostRecord struct {
	Influencer string             `json:"influenciador"`
	Handle     string             `json:"handle"`
	Tier       domain.Tier        `json:"tier"`
	Format     domain.Format      `json:"formato"`
	Date       string             `json:"data,omitempty"`
	Permalink  string             `json:"link,omitempty"`
	Metrics    domain.PostMetrics `json:"metricas"`
}

// Dataset builds the AI payload under the composer's date filter.
func (c *Composer) Dataset() Dataset {
	ds := Dataset{
		Campaign:    c.Header(),
		Totals:      metrics.Summarize(c.proj),
		Formats:     metrics.ByFormat(c.proj, c.opts.KPI),
		Tiers:       metrics.ByTier(c.proj, c.opts.KPI),
		Influencers: metrics.Influencers(c.proj),
		Top:         c.topSlots(),
	}
	if c.proj.IsAON {
		ds.Monthly = metrics.Monthly(metrics.Daily(c.proj, c.opts.Start, c.opts.End))
	}
	for _, r := range metrics.Posts(c.proj) {
		rec := PostRecord{
			Influencer: r.Influencer.DisplayName,
			Handle:     r.Influencer.Handle,
			Tier:       r.Influencer.Tier,
			Format:     r.Post.Format,
			Permalink:  r.Post.Permalink,
			Metrics:    r.Post.Metrics,
		}
		if r.Post.Date != nil {
			rec.Date = domain.FormatBR(*r.Post.Date)
		}
		ds.Posts = append(ds.Posts, rec)
	}
	return ds
}
