package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type CreateInsightParams struct {
	CampaignID uuid.UUID
	Page       string
	Type       string
	Title      string
	Body       string
	Source     string
}

type UpdateInsightParams struct {
	Type  *string
	Title *string
	Body  *string
}

const insightColumns = `id, campaign_id, page, type, title, body, source, active, created_at, updated_at`

const sqlCreateInsight = `
INSERT INTO insights (id, campaign_id, page, type, title, body, source, active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *Store) CreateInsight(ctx context.Context, params CreateInsightParams) (Insight, error) {
	id := uuid.New()
	ts := now()
	_, err := s.exec(ctx, s.db, sqlCreateInsight,
		id, params.CampaignID, params.Page, params.Type, params.Title, params.Body, params.Source, true, ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to create insight", err)
		return Insight{}, fmt.Errorf("failed to create insight: %w", err)
	}
	return s.GetInsightByID(ctx, id)
}

const sqlGetInsightByID = `SELECT ` + insightColumns + ` FROM insights WHERE id = ?`

func (s *Store) GetInsightByID(ctx context.Context, id uuid.UUID) (Insight, error) {
	var in Insight
	if err := s.get(ctx, s.db, &in, sqlGetInsightByID, id); err != nil {
		return Insight{}, s.notFound(ctx, err, "get insight by id")
	}
	return in, nil
}

// ListInsights returns a campaign's insights ordered by creation time. An
// empty page lists every page; includeExcluded adds soft-deleted rows.
func (s *Store) ListInsights(ctx context.Context, campaignID uuid.UUID, page string, includeExcluded bool) ([]Insight, error) {
	query := `SELECT ` + insightColumns + ` FROM insights WHERE campaign_id = ?`
	args := []any{campaignID}
	if page != "" {
		query += ` AND page = ?`
		args = append(args, page)
	}
	if !includeExcluded {
		query += ` AND active = ?`
		args = append(args, true)
	}
	query += ` ORDER BY created_at, id`

	out := []Insight{}
	if err := s.sel(ctx, s.reader(ctx), &out, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list insights", err)
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return out, nil
}

const sqlUpdateInsight = `
UPDATE insights SET
    type = COALESCE(?, type),
    title = COALESCE(?, title),
    body = COALESCE(?, body),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdateInsight(ctx context.Context, id uuid.UUID, params UpdateInsightParams) (Insight, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateInsight, params.Type, params.Title, params.Body, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update insight", err)
		return Insight{}, fmt.Errorf("failed to update insight: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Insight{}, err
	}
	return s.GetInsightByID(ctx, id)
}

const sqlSetInsightActive = `UPDATE insights SET active = ?, updated_at = ? WHERE id = ?`

// SetInsightActive is soft delete (false) and restore (true).
func (s *Store) SetInsightActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := s.exec(ctx, s.db, sqlSetInsightActive, active, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to set insight active", err)
		return fmt.Errorf("failed to set insight active: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlDeleteInsight = `DELETE FROM insights WHERE id = ?`

func (s *Store) DeleteInsight(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteInsight, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete insight", err)
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountActiveInsights = `SELECT COUNT(*) FROM insights WHERE campaign_id = ? AND active = ?`

func (s *Store) CountInsights(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountActiveInsights, campaignID, true); err != nil {
		return 0, fmt.Errorf("failed to count insights: %w", err)
	}
	return n, nil
}
