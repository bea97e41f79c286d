package metrics

import (
	"air-relatorios/internal/domain"
)

// LabelThreshold is the share below which a stacked segment is not labelled.
const LabelThreshold = 5.0

// TierShare is one segment of a 100% stacked bar.
type TierShare struct {
	Tier     domain.Tier `json:"tier"`
	Value    float64     `json:"value"`
	Percent  float64     `json:"percent"`
	Labelled bool        `json:"labelled"`
}

// FormatRow aggregates the units of one post format.
type FormatRow struct {
	Format      domain.Format `json:"format"`
	Influencers int           `json:"influencers"`
	Rollup
	TierShares []TierShare `json:"tier_shares"`
}

// TierRow aggregates the influencers of one tier.
type TierRow struct {
	Tier          domain.Tier `json:"tier"`
	Influencers   int         `json:"influencers"`
	AvgEngagement float64     `json:"avg_engagement"`
	Rollup
	Share float64 `json:"share"`
}

// ByFormat groups units by format in domain.Formats order, skipping formats
// without posts. Each row carries the tier distribution of kpi inside it.
// Formats outside domain.Formats come last in first-seen order.
func ByFormat(c Campaign, kpi KPI) []FormatRow {
	idx := c.influencerIndex()
	byFormat := make(map[domain.Format]*accumulator)
	byFormatTier := make(map[domain.Format]map[domain.Tier]*accumulator)
	var extra []domain.Format

	for _, u := range units(c.Posts, idx) {
		inf := idx[u.influencerID]
		a, ok := byFormat[u.format]
		if !ok {
			a = newAccumulator()
			byFormat[u.format] = a
			byFormatTier[u.format] = make(map[domain.Tier]*accumulator)
			if !knownFormat(u.format) {
				extra = append(extra, u.format)
			}
		}
		a.addUnit(u, inf)
		ta, ok := byFormatTier[u.format][inf.Tier]
		if !ok {
			ta = newAccumulator()
			byFormatTier[u.format][inf.Tier] = ta
		}
		ta.addUnit(u, inf)
	}

	var out []FormatRow
	for _, f := range append(append([]domain.Format{}, domain.Formats...), extra...) {
		a, ok := byFormat[f]
		if !ok {
			continue
		}
		values := make([]float64, len(domain.Tiers))
		for i, t := range domain.Tiers {
			if ta, ok := byFormatTier[f][t]; ok {
				values[i] = ta.rollup().Value(kpi)
			}
		}
		out = append(out, FormatRow{
			Format:      f,
			Influencers: len(a.order),
			Rollup:      a.rollup(),
			TierShares:  distribution(values),
		})
	}
	return out
}

func knownFormat(f domain.Format) bool {
	for _, known := range domain.Formats {
		if f == known {
			return true
		}
	}
	return false
}

// distribution turns per-tier values into a 100% stack.
func distribution(values []float64) []TierShare {
	var total float64
	for _, v := range values {
		total += v
	}
	out := make([]TierShare, len(domain.Tiers))
	for i, t := range domain.Tiers {
		share := TierShare{Tier: t, Value: values[i]}
		if total > 0 {
			share.Percent = domain.Round2(values[i] / total * 100)
		}
		share.Labelled = share.Percent >= LabelThreshold
		out[i] = share
	}
	return out
}

// ByTier returns one row per tier in canonical order, including empty tiers.
// Share is the tier's part of kpi over the whole tier axis.
func ByTier(c Campaign, kpi KPI) []TierRow {
	idx := c.influencerIndex()
	accs := make(map[domain.Tier]*accumulator, len(domain.Tiers))
	for _, t := range domain.Tiers {
		accs[t] = newAccumulator()
	}
	for _, inf := range c.Influencers {
		if a, ok := accs[inf.Tier]; ok {
			a.addMember(inf)
		}
	}
	for _, u := range units(c.Posts, idx) {
		inf := idx[u.influencerID]
		if a, ok := accs[inf.Tier]; ok {
			a.addUnit(u, inf)
		}
	}

	engagement := make(map[domain.Tier][]float64)
	for _, row := range Influencers(c) {
		engagement[row.Influencer.Tier] = append(engagement[row.Influencer.Tier], row.EngagementRate)
	}

	out := make([]TierRow, len(domain.Tiers))
	var total float64
	for i, t := range domain.Tiers {
		r := accs[t].rollup()
		out[i] = TierRow{
			Tier:          t,
			Influencers:   len(accs[t].order),
			AvgEngagement: mean(engagement[t]),
			Rollup:        r,
		}
		total += r.Value(kpi)
	}
	if total > 0 {
		for i := range out {
			out[i].Share = domain.Round2(out[i].Value(kpi) / total * 100)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return domain.Round2(sum / float64(len(xs)))
}
