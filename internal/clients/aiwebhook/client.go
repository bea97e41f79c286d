package aiwebhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/observability"
)

var ErrNotConfigured = errors.New("AI webhook URL is not configured")

// Client posts to the AI webhook. Every call is a single attempt bounded by
// its own timeout; callers decide whether to retry.
type Client struct {
	url             string
	http            *http.Client
	timeout         time.Duration
	commentsTimeout time.Duration
	logger          *observability.Logger
}

func NewClient(url string, timeout, commentsTimeout time.Duration, logger *observability.Logger) *Client {
	return &Client{
		url:             url,
		http:            &http.Client{},
		timeout:         timeout,
		commentsTimeout: commentsTimeout,
		logger:          logger,
	}
}

func (c *Client) post(ctx context.Context, timeout time.Duration, payload any) ([]byte, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	body, err := httpx.PostJSON(ctx, c.http, c.url, nil, payload)
	ctx = observability.WithFields(ctx, observability.Field{Key: "ai_latency_ms", Value: time.Since(start).Milliseconds()})
	if err != nil {
		c.logger.Error(ctx, "AI webhook call failed", err)
		return nil, err
	}
	return body, nil
}

// ClassifyComments tags one batch of comments.
func (c *Client) ClassifyComments(ctx context.Context, req ClassifyRequest) ([]Classification, error) {
	req.Action = ActionClassifyComments
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID},
		observability.Field{Key: "comments", Value: len(req.Comments)},
	)
	body, err := c.post(ctx, c.commentsTimeout, req)
	if err != nil {
		return nil, err
	}
	out, err := ExtractClassifications(body)
	if err != nil {
		c.logger.Error(ctx, "failed to parse classification answer", err)
		return nil, err
	}
	return out, nil
}

// GenerateInsights asks for the insights of one report page.
func (c *Client) GenerateInsights(ctx context.Context, req InsightRequest) ([]Insight, error) {
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID},
		observability.Field{Key: "page", Value: req.Page},
	)
	body, err := c.post(ctx, c.timeout, req)
	if err != nil {
		return nil, err
	}
	out, err := ExtractInsights(body)
	if err != nil {
		c.logger.Error(ctx, "failed to parse insights answer", err)
		return nil, err
	}
	return out, nil
}

// RegenerateInsight rewrites current using the same metrics bundle.
func (c *Client) RegenerateInsight(ctx context.Context, req InsightRequest, current Insight) (Insight, error) {
	req.Action = ActionRegenerateInsight
	req.Current = &current
	out, err := c.GenerateInsights(ctx, req)
	if err != nil {
		return Insight{}, err
	}
	if len(out) == 0 {
		return Insight{}, fmt.Errorf("no insight returned: %w", ErrMalformedResponse)
	}
	return out[0], nil
}
