// Package exports writes campaign data as CSV, XLSX and PDF files.
package exports

import (
	"encoding/csv"
	"io"
	"strconv"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
)

// utf8BOM makes spreadsheet apps read accented names correctly.
const utf8BOM = "\uFEFF"

var campaignColumns = []string{
	"campaign", "influencer", "handle", "network", "tier", "followers", "format", "platform", "date",
	"impressions", "reach", "interactions", "likes", "comments", "shares", "saves", "link_clicks", "cost",
}

var balizadoresColumns = []string{
	"influencer", "handle", "network", "tier", "followers", "posts", "impressions", "views", "reach",
	"reach_sum", "interactions", "qualified_interactions", "likes", "comments", "shares", "saves",
	"link_clicks", "engagement_rate", "reach_rate", "cost", "cpm", "cpe", "cpi", "cpv",
}

// WriteCampaignCSV writes one row per post. Cost is the influencer's fee for
// the campaign, repeated on each of their posts.
func WriteCampaignCSV(w io.Writer, campaign string, rows []metrics.PostRow) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(campaignColumns); err != nil {
		return err
	}
	for _, r := range rows {
		date := ""
		if r.Post.Date != nil {
			date = domain.FormatBR(*r.Post.Date)
		}
		platform := r.Post.Platform
		if platform == "" {
			platform = r.Influencer.Network
		}
		rec := []string{
			campaign,
			r.Influencer.DisplayName,
			r.Influencer.Handle,
			r.Influencer.Network,
			string(r.Influencer.Tier),
			itoa(r.Influencer.Followers),
			string(r.Post.Format),
			platform,
			date,
			itoa(r.Impressions),
			itoa(r.Reach),
			itoa(r.Interactions),
			itoa(r.Likes),
			itoa(r.Comments),
			itoa(r.Shares),
			itoa(r.Saves),
			itoa(r.LinkClicks),
			ftoa(r.Influencer.Cost),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBalizadoresCSV writes one row per influencer with the campaign rollup
// and cost ratios.
func WriteBalizadoresCSV(w io.Writer, rows []metrics.InfluencerRollup) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(balizadoresColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(balizadoresRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func balizadoresRecord(r metrics.InfluencerRollup) []string {
	cpm, cpe, cpi, cpv := metrics.Ratios(r.Rollup)
	return []string{
		r.Influencer.DisplayName,
		r.Influencer.Handle,
		r.Influencer.Network,
		string(r.Influencer.Tier),
		itoa(r.Influencer.Followers),
		strconv.Itoa(r.Posts),
		itoa(r.Impressions),
		itoa(r.Views),
		itoa(r.Reach),
		itoa(r.ReachSum),
		itoa(r.Interactions),
		itoa(r.QualifiedInteractions),
		itoa(r.Likes),
		itoa(r.Comments),
		itoa(r.Shares),
		itoa(r.Saves),
		itoa(r.LinkClicks),
		ftoa(r.EngagementRate),
		ftoa(r.ReachRate),
		ftoa(r.Cost),
		ftoa(cpm),
		ftoa(cpe),
		ftoa(cpi),
		ftoa(cpv),
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(domain.Round2(f), 'f', 2, 64)
}
