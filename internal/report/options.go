package report

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
)

// Tier series shown as the line of the tier combo chart.
const (
	TierSeriesCount   = "count"
	TierSeriesAvgRate = "avg_rate"
	TierSeriesPosts   = "posts"
)

const defaultTopN = 15

// Options carry the view choices a page is composed with.
type Options struct {
	Start      *time.Time
	End        *time.Time
	KPI        metrics.KPI
	LineRate   metrics.KPI
	TierSeries string
	Ratio      metrics.Ratio
	TopN       int
	Format     domain.Format
	Tier       domain.Tier
	Network    string
}

// DefaultOptions is what a page renders with when nothing is chosen.
func DefaultOptions() Options {
	return Options{
		KPI:        metrics.KPIImpressions,
		LineRate:   metrics.KPIEngagementRate,
		TierSeries: TierSeriesCount,
		Ratio:      metrics.RatioCPM,
		TopN:       defaultTopN,
	}
}

// ParseOptions reads start, end, kpi, line, tier_series, ratio, top, format,
// tier and network from a query string.
func ParseOptions(q url.Values) (Options, error) {
	opts := DefaultOptions()
	var err error

	if s := q.Get("start"); s != "" {
		t, err := domain.ParseDateFlex(s)
		if err != nil {
			return Options{}, err
		}
		opts.Start = &t
	}
	if s := q.Get("end"); s != "" {
		t, err := domain.ParseDateFlex(s)
		if err != nil {
			return Options{}, err
		}
		opts.End = &t
	}
	if opts.Start != nil && opts.End != nil && opts.End.Before(*opts.Start) {
		return Options{}, fmt.Errorf("end date before start date: %w", domain.ErrBadInput)
	}

	if opts.KPI, err = metrics.ParseKPI(q.Get("kpi"), opts.KPI); err != nil {
		return Options{}, err
	}
	if opts.LineRate, err = metrics.ParseKPI(q.Get("line"), opts.LineRate); err != nil {
		return Options{}, err
	}
	if !opts.LineRate.IsRate() {
		return Options{}, fmt.Errorf("line must be a rate, got %q: %w", opts.LineRate, domain.ErrBadInput)
	}
	switch s := strings.TrimSpace(q.Get("tier_series")); s {
	case "":
	case TierSeriesCount, TierSeriesAvgRate, TierSeriesPosts:
		opts.TierSeries = s
	default:
		return Options{}, fmt.Errorf("unknown tier series %q: %w", s, domain.ErrBadInput)
	}
	if opts.Ratio, err = metrics.ParseRatio(q.Get("ratio")); err != nil {
		return Options{}, err
	}
	if s := q.Get("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Options{}, fmt.Errorf("invalid top %q: %w", s, domain.ErrBadInput)
		}
		opts.TopN = n
	}
	if s := q.Get("format"); s != "" {
		if opts.Format, err = domain.ParseFormat(s); err != nil {
			return Options{}, err
		}
	}
	if s := q.Get("tier"); s != "" {
		if opts.Tier, err = domain.ParseTier(s); err != nil {
			return Options{}, err
		}
	}
	opts.Network = strings.ToLower(strings.TrimSpace(q.Get("network")))
	return opts, nil
}
