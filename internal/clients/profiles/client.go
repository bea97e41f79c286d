// Package profiles is the adapter for the social profile and posts API.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	ErrNotConfigured  = errors.New("profile API is not configured")
	ErrInvalidPostURL = fmt.Errorf("could not find a post id in the link: %w", domain.ErrBadInput)
	ErrProfileMissing = fmt.Errorf("influencer has no profile id: %w", domain.ErrBadInput)
)

const isoDate = "2006-01-02"

// Config tunes the adapter.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RPS        float64
	Burst      int
	BudgetDays int
	WindowDays int
}

type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	logger  *observability.Logger
	now     func() time.Time
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.BudgetDays <= 0 {
		cfg.BudgetDays = 365
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 30
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		logger:  logger,
		now:     time.Now,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ProfileAPI",
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// 4xx answers are the caller's problem, not an outage.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			status := httpx.UpstreamStatus(err)
			return status >= 400 && status < 500
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state changed",
				observability.Field{Key: "breaker", Value: name},
				observability.Field{Key: "from", Value: from.String()},
				observability.Field{Key: "to", Value: to.String()},
			)
		},
	})
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.cfg.BaseURL == "" {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
		headers := map[string]string{}
		if c.cfg.APIKey != "" {
			headers["Authorization"] = "Bearer " + c.cfg.APIKey
		}
		return nil, httpx.GetJSON(ctx, c.http, strings.TrimRight(c.cfg.BaseURL, "/")+"/"+path, query, headers, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &httpx.UpstreamError{Status: http.StatusServiceUnavailable, Body: err.Error()}
	}
	return err
}

// GetProfile looks a profile up by username on network.
func (c *Client) GetProfile(ctx context.Context, username, network string) (Profile, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "username", Value: username},
		observability.Field{Key: "network", Value: network},
	)

	var resp profileResponse
	q := url.Values{"username": {username}, "network": {network}}
	if err := c.get(ctx, "profile", q, &resp); err != nil {
		c.logger.Error(ctx, "profile lookup failed", err)
		return Profile{}, err
	}
	p := resp.toProfile()
	if p.Username == "" {
		p.Username = username
	}
	if p.Network == "" {
		p.Network = network
	}
	return p, nil
}

// SearchPosts fetches one page of posts of a profile.
func (c *Client) SearchPosts(ctx context.Context, f PostFilter) (PostsPage, error) {
	if f.ProfileID == "" {
		return PostsPage{}, ErrProfileMissing
	}
	q := url.Values{"profile_id": {f.ProfileID}}
	if !f.Start.IsZero() {
		q.Set("start_date", f.Start.Format(isoDate))
	}
	if !f.End.IsZero() {
		q.Set("end_date", f.End.Format(isoDate))
	}
	for _, t := range f.PostTypes {
		q.Add("post_types", t)
	}
	if f.Text != "" {
		q.Set("text", f.Text)
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))

	var out PostsPage
	if err := c.get(ctx, "posts", q, &out); err != nil {
		c.logger.Error(ctx, "posts search failed", err)
		return PostsPage{}, err
	}
	if out.CurrentPage == 0 {
		out.CurrentPage = page
	}
	return out, nil
}

// FindPostByLink walks back from today in windows of WindowDays, reading
// every page of each window, until it finds the post whose id matches link
// or budgetDays are covered. A nil item with a nil error means not found.
// budgetDays <= 0 uses the configured budget.
func (c *Client) FindPostByLink(ctx context.Context, profileID, link string, budgetDays int) (*PostItem, error) {
	target := domain.ExtractPostID(link)
	if target == "" {
		return nil, ErrInvalidPostURL
	}
	if budgetDays <= 0 {
		budgetDays = c.cfg.BudgetDays
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID},
		observability.Field{Key: "post_id", Value: target},
	)

	end := domain.Day(c.now())
	oldest := end.AddDate(0, 0, -(budgetDays - 1))
	windows := 0
	for !end.Before(oldest) {
		start := end.AddDate(0, 0, -(c.cfg.WindowDays - 1))
		if start.Before(oldest) {
			start = oldest
		}
		windows++

		for page := 1; ; page++ {
			res, err := c.SearchPosts(ctx, PostFilter{ProfileID: profileID, Start: start, End: end, Page: page})
			if err != nil {
				return nil, err
			}
			for i := range res.Items {
				if res.Items[i].ShortcodeID() == target {
					item := res.Items[i]
					c.logger.Info(ctx, "post found by link", observability.Field{Key: "windows", Value: windows})
					return &item, nil
				}
			}
			if page >= res.Pages || len(res.Items) == 0 {
				break
			}
		}
		end = start.AddDate(0, 0, -1)
	}

	c.logger.Info(ctx, "post not found within lookup budget", observability.Field{Key: "windows", Value: windows})
	return nil, nil
}
