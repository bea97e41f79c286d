package domain

import (
	"fmt"
	"strings"
)

// Network is the social platform an influencer account lives on.
type Network string

const (
	NetworkInstagram Network = "instagram"
	NetworkTikTok    Network = "tiktok"
	NetworkYouTube   Network = "youtube"
)

func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case NetworkInstagram, NetworkTikTok, NetworkYouTube:
		return n, nil
	}
	return "", fmt.Errorf("unknown network %q: %w", s, ErrBadInput)
}

// Format is the post format as reported by the platform or chosen by the operator.
type Format string

const (
	FormatReels    Format = "Reels"
	FormatStories  Format = "Stories"
	FormatCarousel Format = "Carousel"
	FormatFeed     Format = "Feed"
	FormatTikTok   Format = "TikTok"
	FormatYouTube  Format = "YouTube"
	FormatIGTV     Format = "IGTV"
	FormatVideo    Format = "Video"
)

// Formats lists every format in display order.
var Formats = []Format{
	FormatReels, FormatStories, FormatCarousel, FormatFeed,
	FormatTikTok, FormatYouTube, FormatIGTV, FormatVideo,
}

// ParseFormat matches case-insensitively and accepts the aliases the profile
// API uses for post types.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "reels", "reel", "clips":
		return FormatReels, nil
	case "stories", "story":
		return FormatStories, nil
	case "carousel", "carrossel", "sidecar", "album":
		return FormatCarousel, nil
	case "feed", "image", "photo", "post":
		return FormatFeed, nil
	case "tiktok":
		return FormatTikTok, nil
	case "youtube", "short", "shorts":
		return FormatYouTube, nil
	case "igtv":
		return FormatIGTV, nil
	case "video":
		return FormatVideo, nil
	}
	return "", fmt.Errorf("unknown post format %q: %w", s, ErrBadInput)
}

// Page identifies a report page.
type Page string

const (
	PageBigNumbers      Page = "big_numbers"
	PageGeneralAnalysis Page = "general_analysis"
	PageAONView         Page = "aon_view"
	PageKPIsInfluencer  Page = "kpis_influencer"
	PageTopPerformance  Page = "top_performance"
	PageInfluencerList  Page = "influencer_list"
	PageComments        Page = "comments"
	PageGlossary        Page = "glossary"
)

// ReportPages lists every report page in render order.
var ReportPages = []Page{
	PageBigNumbers, PageGeneralAnalysis, PageAONView, PageKPIsInfluencer,
	PageTopPerformance, PageInfluencerList, PageComments, PageGlossary,
}

// InsightPages are the pages that carry AI/manual insights.
var InsightPages = []Page{
	PageBigNumbers, PageGeneralAnalysis, PageAONView, PageKPIsInfluencer, PageTopPerformance,
}

func ParsePage(s string) (Page, error) {
	p := Page(strings.TrimSpace(s))
	for _, known := range ReportPages {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown report page %q: %w", s, ErrBadInput)
}

func ParseInsightPage(s string) (Page, error) {
	p := Page(strings.TrimSpace(s))
	for _, known := range InsightPages {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("page %q does not carry insights: %w", s, ErrBadInput)
}

// InsightType is the tone of an insight card.
type InsightType string

const (
	InsightSuccess   InsightType = "sucesso"
	InsightAlert     InsightType = "alerta"
	InsightInfo      InsightType = "info"
	InsightHighlight InsightType = "destaque"
	InsightCritical  InsightType = "critico"
)

// ParseInsightType falls back to info for unknown tones coming from the AI;
// operators creating insights by hand go through ValidInsightType instead.
func ParseInsightType(s string) InsightType {
	t := InsightType(strings.ToLower(strings.TrimSpace(s)))
	if ValidInsightType(t) {
		return t
	}
	switch t {
	case "success":
		return InsightSuccess
	case "alert", "warning", "atencao", "atenção":
		return InsightAlert
	case "highlight":
		return InsightHighlight
	case "critical", "crítico":
		return InsightCritical
	}
	return InsightInfo
}

func ValidInsightType(t InsightType) bool {
	switch t {
	case InsightSuccess, InsightAlert, InsightInfo, InsightHighlight, InsightCritical:
		return true
	}
	return false
}

// InsightSource records who authored an insight.
type InsightSource string

const (
	InsightSourceAI     InsightSource = "ai"
	InsightSourceManual InsightSource = "manual"
)

// Role is an operator role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DataMode says whether post metrics are typed in once or refreshed from the API.
type DataMode string

const (
	DataModeStatic  DataMode = "static"
	DataModeDynamic DataMode = "dynamic"
)

func ParseDataMode(s string) (DataMode, error) {
	switch m := DataMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DataModeStatic, nil
	case DataModeStatic, DataModeDynamic:
		return m, nil
	}
	return "", fmt.Errorf("unknown data mode %q: %w", s, ErrBadInput)
}

// Metric names a collectable post metric; campaigns flag which ones they collect.
type Metric string

const (
	MetricViews             Metric = "views"
	MetricReach             Metric = "reach"
	MetricInteractions      Metric = "interactions"
	MetricImpressions       Metric = "impressions"
	MetricLikes             Metric = "likes"
	MetricComments          Metric = "comments"
	MetricShares            Metric = "shares"
	MetricSaves             Metric = "saves"
	MetricLinkClicks        Metric = "link_clicks"
	MetricCouponConversions Metric = "coupon_conversions"
)

var Metrics = []Metric{
	MetricViews, MetricReach, MetricInteractions, MetricImpressions, MetricLikes,
	MetricComments, MetricShares, MetricSaves, MetricLinkClicks, MetricCouponConversions,
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Metrics {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q: %w", s, ErrBadInput)
}

// Unclassified is the comment category used when the classifier picks nothing
// or could not be reached.
const Unclassified = "Unclassified"
