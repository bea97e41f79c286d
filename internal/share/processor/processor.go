package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// ShareStore defines the database operations required by ShareProcessor
type ShareStore interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	CreateShareToken(ctx context.Context, params store.CreateShareTokenParams) (store.ShareToken, error)
	GetShareTokenByToken(ctx context.Context, token string) (store.ShareToken, error)
	ListShareTokens(ctx context.Context, campaignID uuid.UUID) ([]store.ShareToken, error)
	IncrementShareTokenViews(ctx context.Context, id uuid.UUID) error
	DeleteShareToken(ctx context.Context, id uuid.UUID) error
}

// ReportRenderer composes report pages.
type ReportRenderer interface {
	GetPage(ctx context.Context, campaignID uuid.UUID, page string, opts report.Options) (report.Payload, error)
	GetAll(ctx context.Context, campaignID uuid.UUID, opts report.Options, allowed []string) ([]report.Payload, error)
}

var (
	ErrInvalidShare     = fmt.Errorf("share link is invalid or expired: %w", domain.ErrBadInput)
	ErrShareViewLimit   = fmt.Errorf("share link view limit reached: %w", domain.ErrConflict)
	ErrCampaignNotFound = fmt.Errorf("campaign not found: %w", domain.ErrNotFound)
	ErrShareNotFound    = fmt.Errorf("share link not found: %w", domain.ErrNotFound)
	ErrInvalidMaxViews  = fmt.Errorf("max views must be positive: %w", domain.ErrBadInput)
	ErrExpiryInPast     = fmt.Errorf("expiry must be in the future: %w", domain.ErrBadInput)
)

type ShareProcessor struct {
	store     ShareStore
	reports   ReportRenderer
	webAppURI string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store ShareStore, reports ReportRenderer, webAppURI string, logger *observability.Logger) ShareProcessor {
	return ShareProcessor{
		store:     store,
		reports:   reports,
		webAppURI: webAppURI,
		logger:    logger,
		now:       time.Now,
	}
}

type IssueParams struct {
	Title        *string
	AllowedPages []string
	ExpiresAt    *time.Time
	MaxViews     *int64
}

// IssuedShare is a share token plus its public link.
type IssuedShare struct {
	store.ShareToken
	URL string `json:"url"`
}

// ShareContext is what a validated token grants.
type ShareContext struct {
	Token store.ShareToken
	Pages []domain.Page
}

// Info is the public description of a share link.
type Info struct {
	Title     string        `json:"title,omitempty"`
	Pages     []domain.Page `json:"pages"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}

func (p *ShareProcessor) link(token string) string {
	return strings.TrimRight(p.webAppURI, "/") + "/?" + url.Values{"share": {token}}.Encode()
}

// Issue creates a share link for a campaign. Page names are checked and
// de-duplicated; an empty list grants every page.
func (p *ShareProcessor) Issue(ctx context.Context, campaignID, createdBy uuid.UUID, params IssueParams) (IssuedShare, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if params.MaxViews != nil && *params.MaxViews <= 0 {
		return IssuedShare{}, ErrInvalidMaxViews
	}
	if params.ExpiresAt != nil && !params.ExpiresAt.After(p.now()) {
		return IssuedShare{}, ErrExpiryInPast
	}
	var pages []string
	seen := map[domain.Page]bool{}
	for _, raw := range params.AllowedPages {
		pg, err := domain.ParsePage(raw)
		if err != nil {
			return IssuedShare{}, err
		}
		if !seen[pg] {
			seen[pg] = true
			pages = append(pages, string(pg))
		}
	}
	if params.Title != nil {
		t := strings.TrimSpace(*params.Title)
		if t == "" {
			params.Title = nil
		} else {
			params.Title = &t
		}
	}

	if _, err := p.store.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return IssuedShare{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return IssuedShare{}, err
	}

	token, err := domain.NewOpaqueToken()
	if err != nil {
		p.logger.Error(ctx, "failed to generate share token", err)
		return IssuedShare{}, err
	}
	st, err := p.store.CreateShareToken(ctx, store.CreateShareTokenParams{
		Token:         token,
		CampaignID:    campaignID,
		TitleOverride: params.Title,
		AllowedPages:  pages,
		ExpiresAt:     params.ExpiresAt,
		MaxViews:      params.MaxViews,
		CreatedBy:     createdBy,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create share token", err)
		return IssuedShare{}, err
	}
	p.logger.Info(ctx, "share link issued", observability.Field{Key: "pages", Value: len(pages)})
	return IssuedShare{ShareToken: st, URL: p.link(st.Token)}, nil
}

func (p *ShareProcessor) List(ctx context.Context, campaignID uuid.UUID) ([]IssuedShare, error) {
	tokens, err := p.store.ListShareTokens(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list share tokens", err)
		return nil, err
	}
	out := make([]IssuedShare, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, IssuedShare{ShareToken: t, URL: p.link(t.Token)})
	}
	return out, nil
}

func (p *ShareProcessor) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteShareToken(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrShareNotFound
		}
		p.logger.Error(ctx, "failed to delete share token", err)
		return err
	}
	return nil
}

// Validate checks a token without counting a view. Unknown and expired tokens
// yield ErrInvalidShare; a token whose views reached max_views yields
// ErrShareViewLimit.
func (p *ShareProcessor) Validate(ctx context.Context, token string) (ShareContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ShareContext{}, ErrInvalidShare
	}
	st, err := p.store.GetShareTokenByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ShareContext{}, ErrInvalidShare
		}
		p.logger.Error(ctx, "failed to get share token", err)
		return ShareContext{}, err
	}
	if st.ExpiresAt != nil && !p.now().Before(*st.ExpiresAt) {
		return ShareContext{}, ErrInvalidShare
	}
	if st.MaxViews != nil && st.ViewsCount >= *st.MaxViews {
		return ShareContext{}, ErrShareViewLimit
	}
	return ShareContext{Token: st, Pages: report.AllowedPages(st.AllowedPages.V)}, nil
}

// Confirm counts one view after a render succeeded. Losing the race for the
// last view turns into ErrShareViewLimit.
func (p *ShareProcessor) Confirm(ctx context.Context, sc ShareContext) error {
	if err := p.store.IncrementShareTokenViews(ctx, sc.Token.ID); err != nil {
		if errors.Is(err, store.ErrShareViewCapReached) {
			return ErrShareViewLimit
		}
		p.logger.Error(ctx, "failed to count share view", err)
		return err
	}
	return nil
}

// Describe lists what a token may show, without counting a view.
func (p *ShareProcessor) Describe(ctx context.Context, token string) (Info, error) {
	sc, err := p.Validate(ctx, token)
	if err != nil {
		return Info{}, err
	}
	info := Info{Pages: sc.Pages, ExpiresAt: sc.Token.ExpiresAt}
	if sc.Token.TitleOverride != nil {
		info.Title = *sc.Token.TitleOverride
	}
	return info, nil
}

// RenderPage renders one page under a token. A page outside the token's list
// fails with report.ErrPageNotPermitted and is not counted.
func (p *ShareProcessor) RenderPage(ctx context.Context, token, page string, opts report.Options) (report.Payload, error) {
	sc, err := p.Validate(ctx, token)
	if err != nil {
		return report.Payload{}, err
	}
	pg, err := domain.ParsePage(page)
	if err != nil {
		return report.Payload{}, err
	}
	if !report.PageAllowed(sc.Token.AllowedPages.V, pg) {
		return report.Payload{}, report.ErrPageNotPermitted
	}

	payload, err := p.reports.GetPage(ctx, sc.Token.CampaignID, string(pg), opts)
	if err != nil {
		return report.Payload{}, err
	}
	applyTitle(&payload, sc.Token)
	if err := p.Confirm(ctx, sc); err != nil {
		return report.Payload{}, err
	}
	return payload, nil
}

// RenderAll renders every permitted page as one view.
func (p *ShareProcessor) RenderAll(ctx context.Context, token string, opts report.Options) ([]report.Payload, error) {
	sc, err := p.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	pages, err := p.reports.GetAll(ctx, sc.Token.CampaignID, opts, sc.Token.AllowedPages.V)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		applyTitle(&pages[i], sc.Token)
	}
	if err := p.Confirm(ctx, sc); err != nil {
		return nil, err
	}
	return pages, nil
}

func applyTitle(payload *report.Payload, st store.ShareToken) {
	if st.TitleOverride != nil {
		payload.Header.Title = *st.TitleOverride
	}
}
