package store

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

// ErrShareViewCapReached is returned when an increment would exceed max_views.
var ErrShareViewCapReached = fmt.Errorf("share link view limit reached: %w", domain.ErrConflict)

type CreateShareTokenParams struct {
	Token         string
	CampaignID    uuid.UUID
	TitleOverride *string
	AllowedPages  []string
	ExpiresAt     *time.Time
	MaxViews      *int64
	CreatedBy     uuid.UUID
}

const shareTokenColumns = `id, token, campaign_id, title_override, allowed_pages, expires_at, max_views, views_count,
    created_by, created_at`

const sqlCreateShareToken = `
INSERT INTO share_tokens (id, token, campaign_id, title_override, allowed_pages, expires_at, max_views,
    views_count, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

func (s *Store) CreateShareToken(ctx context.Context, params CreateShareTokenParams) (ShareToken, error) {
	var pages JSON[[]string]
	if params.AllowedPages != nil {
		pages = NewJSON(params.AllowedPages)
	}
	var expires *time.Time
	if params.ExpiresAt != nil {
		t := params.ExpiresAt.UTC()
		expires = &t
	}
	id := uuid.New()
	_, err := s.exec(ctx, s.db, sqlCreateShareToken,
		id, params.Token, params.CampaignID, params.TitleOverride, pages, expires, params.MaxViews,
		params.CreatedBy, now())
	if err != nil {
		s.logger.Error(ctx, "failed to create share token", err)
		return ShareToken{}, fmt.Errorf("failed to create share token: %w", err)
	}
	return s.GetShareTokenByID(ctx, id)
}

const sqlGetShareTokenByID = `SELECT ` + shareTokenColumns + ` FROM share_tokens WHERE id = ?`

func (s *Store) GetShareTokenByID(ctx context.Context, id uuid.UUID) (ShareToken, error) {
	var t ShareToken
	if err := s.get(ctx, s.db, &t, sqlGetShareTokenByID, id); err != nil {
		return ShareToken{}, s.notFound(ctx, err, "get share token by id")
	}
	return t, nil
}

const sqlGetShareTokenByToken = `SELECT ` + shareTokenColumns + ` FROM share_tokens WHERE token = ?`

func (s *Store) GetShareTokenByToken(ctx context.Context, token string) (ShareToken, error) {
	var t ShareToken
	if err := s.get(ctx, s.db, &t, sqlGetShareTokenByToken, token); err != nil {
		return ShareToken{}, s.notFound(ctx, err, "get share token")
	}
	return t, nil
}

const sqlListShareTokens = `SELECT ` + shareTokenColumns + ` FROM share_tokens WHERE campaign_id = ? ORDER BY created_at DESC`

func (s *Store) ListShareTokens(ctx context.Context, campaignID uuid.UUID) ([]ShareToken, error) {
	out := []ShareToken{}
	if err := s.sel(ctx, s.db, &out, sqlListShareTokens, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list share tokens", err)
		return nil, fmt.Errorf("failed to list share tokens: %w", err)
	}
	return out, nil
}

const sqlIncrementShareViews = `
UPDATE share_tokens SET views_count = views_count + 1
WHERE id = ? AND (max_views IS NULL OR views_count < max_views)`

// IncrementShareTokenViews atomically counts one render, refusing to pass
// max_views.
func (s *Store) IncrementShareTokenViews(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlIncrementShareViews, id)
	if err != nil {
		s.logger.Error(ctx, "failed to increment share views", err)
		return fmt.Errorf("failed to increment share views: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return ErrShareViewCapReached
	}
	return nil
}

const sqlDeleteShareToken = `DELETE FROM share_tokens WHERE id = ?`

func (s *Store) DeleteShareToken(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteShareToken, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete share token", err)
		return fmt.Errorf("failed to delete share token: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountShareTokens = `SELECT COUNT(*) FROM share_tokens WHERE campaign_id = ?`

func (s *Store) CountShareTokens(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountShareTokens, campaignID); err != nil {
		return 0, fmt.Errorf("failed to count share tokens: %w", err)
	}
	return n, nil
}
