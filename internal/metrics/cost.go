package metrics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"air-relatorios/internal/domain"
)

// Ratio is a cost-efficiency measure; lower is better.
type Ratio string

const (
	RatioCPM Ratio = "cpm"
	RatioCPE Ratio = "cpe"
	RatioCPI Ratio = "cpi"
	RatioCPV Ratio = "cpv"
)

func ParseRatio(s string) (Ratio, error) {
	switch r := Ratio(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RatioCPM, nil
	case RatioCPM, RatioCPE, RatioCPI, RatioCPV:
		return r, nil
	}
	return "", fmt.Errorf("unknown cost ratio %q: %w", s, domain.ErrBadInput)
}

// Efficiency holds every ratio for one influencer. Value is the ratio the
// list was sorted by.
type Efficiency struct {
	Influencer Influencer `json:"influencer"`
	Cost       float64    `json:"cost"`
	CPM        float64    `json:"cpm"`
	CPE        float64    `json:"cpe"`
	CPI        float64    `json:"cpi"`
	CPV        float64    `json:"cpv"`
	Value      float64    `json:"value"`
}

// Ratios computes the four ratios of a rollup. A zero denominator gives 0.
func Ratios(r Rollup) (cpm, cpe, cpi, cpv float64) {
	return costPer(r.Cost, r.Impressions, 1000),
		costPer(r.Cost, r.Interactions, 1),
		costPer(r.Cost, r.Impressions, 1),
		costPer(r.Cost, r.Views, 1)
}

func costPer(cost float64, den int64, scale float64) float64 {
	if den <= 0 {
		return 0
	}
	return domain.Round2(cost / float64(den) * scale)
}

// CostEfficiency sorts influencers ascending by ratio, with the same
// followers and name tie-breaks as Rank.
func CostEfficiency(rows []InfluencerRollup, ratio Ratio) []Efficiency {
	out := make([]Efficiency, 0, len(rows))
	for _, row := range rows {
		e := Efficiency{Influencer: row.Influencer, Cost: row.Cost}
		e.CPM, e.CPE, e.CPI, e.CPV = Ratios(row.Rollup)
		switch ratio {
		case RatioCPE:
			e.Value = e.CPE
		case RatioCPI:
			e.Value = e.CPI
		case RatioCPV:
			e.Value = e.CPV
		default:
			e.Value = e.CPM
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b Efficiency) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Influencer.Followers, a.Influencer.Followers); c != 0 {
			return c
		}
		return strings.Compare(a.Influencer.DisplayName, b.Influencer.DisplayName)
	})
	return out
}

// EstimateDelta is (realised/estimate - 1) * 100, or nil without an estimate.
func EstimateDelta(realised, estimate int64) *float64 {
	if estimate <= 0 {
		return nil
	}
	d := domain.Round2((float64(realised)/float64(estimate) - 1) * 100)
	return &d
}

// AirScore averages air_score over distinct influencers; 0 when there are none.
func AirScore(influencers []Influencer) float64 {
	seen := make(map[string]struct{}, len(influencers))
	var sum float64
	for _, inf := range influencers {
		key := inf.ID.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sum += inf.AirScore
	}
	if len(seen) == 0 {
		return 0
	}
	return domain.Round2(sum / float64(len(seen)))
}
