// Package aiwebhook speaks the AI webhook contract: one URL that classifies
// comments and writes report insights, switched on the request body.
package aiwebhook

import (
	"encoding/json"
	"time"
)

const (
	ActionClassifyComments  = "classify_comments"
	ActionRegenerateInsight = "regenerar_insight"
)

type Category struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

type CommentItem struct {
	ID       string `json:"id"`
	Username string `json:"usuario"`
	Text     string `json:"texto"`
	Likes    int64  `json:"likes"`
}

// ClassifyRequest asks the classifier to tag a batch of comments of one post.
type ClassifyRequest struct {
	Action     string        `json:"action"`
	CampaignID string        `json:"campaign_id"`
	PostURL    string        `json:"post_url"`
	Influencer string        `json:"influencer"`
	Comments   []CommentItem `json:"comments"`
	Categories []Category    `json:"categorias"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Classification holds the verdict per category name for one comment.
type Classification struct {
	CommentID string
	Verdicts  map[string]bool
}

// Insight is one narrative card as the AI writes it.
type Insight struct {
	Type  string `json:"tipo"`
	Title string `json:"titulo"`
	Body  string `json:"texto"`
}

// InsightRequest carries the metrics bundle of one report page. Current is
// set only when rewriting an existing insight.
type InsightRequest struct {
	Page       string          `json:"pagina"`
	CampaignID string          `json:"campanha_id"`
	Data       json.RawMessage `json:"dados"`
	Action     string          `json:"acao,omitempty"`
	Current    *Insight        `json:"insight_atual,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
