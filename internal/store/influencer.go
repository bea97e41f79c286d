package store

import (
	"context"
	"fmt"
	"strings"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrInfluencerExists is returned when network+handle is already registered.
var ErrInfluencerExists = fmt.Errorf("influencer already registered for this network: %w", domain.ErrConflict)

type CreateInfluencerParams struct {
	Handle         string
	DisplayName    string
	Network        string
	Followers      int64
	EngagementRate float64
	AirScore       float64
	Classification string
	PhotoURL       *string
	ProfileID      *string
}

// UpdateInfluencerParams never touches classification; use SetInfluencerClassification.
type UpdateInfluencerParams struct {
	Handle         *string
	DisplayName    *string
	Followers      *int64
	EngagementRate *float64
	AirScore       *float64
	PhotoURL       *string
	ProfileID      *string
}

type InfluencerFilter struct {
	Network        string
	Classification string
	Search         string
}

const influencerColumns = `id, handle, display_name, network, followers, engagement_rate, air_score,
    classification, photo_url, profile_id, linked_influencer_id, created_at, updated_at`

const sqlCreateInfluencer = `
INSERT INTO influencers (id, handle, display_name, network, followers, engagement_rate, air_score,
    classification, photo_url, profile_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *Store) CreateInfluencer(ctx context.Context, params CreateInfluencerParams) (Influencer, error) {
	handle := normalizeHandle(params.Handle)
	if _, err := s.GetInfluencerByHandle(ctx, params.Network, handle); err == nil {
		return Influencer{}, ErrInfluencerExists
	}

	id := uuid.New()
	ts := now()
	_, err := s.exec(ctx, s.db, sqlCreateInfluencer,
		id, handle, params.DisplayName, params.Network, params.Followers, params.EngagementRate,
		params.AirScore, params.Classification, params.PhotoURL, params.ProfileID, ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to create influencer", err)
		return Influencer{}, fmt.Errorf("failed to create influencer: %w", err)
	}
	return s.GetInfluencerByID(ctx, id)
}

const sqlGetInfluencerByID = `SELECT ` + influencerColumns + ` FROM influencers WHERE id = ?`

func (s *Store) GetInfluencerByID(ctx context.Context, id uuid.UUID) (Influencer, error) {
	return s.getInfluencer(ctx, s.db, id)
}

func (s *Store) getInfluencer(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (Influencer, error) {
	var inf Influencer
	if err := s.get(ctx, q, &inf, sqlGetInfluencerByID, id); err != nil {
		return Influencer{}, s.notFound(ctx, err, "get influencer by id")
	}
	return inf, nil
}

const sqlGetInfluencerByHandle = `SELECT ` + influencerColumns + ` FROM influencers WHERE network = ? AND handle = ?`

func (s *Store) GetInfluencerByHandle(ctx context.Context, network, handle string) (Influencer, error) {
	var inf Influencer
	if err := s.get(ctx, s.db, &inf, sqlGetInfluencerByHandle, network, normalizeHandle(handle)); err != nil {
		return Influencer{}, s.notFound(ctx, err, "get influencer by handle")
	}
	return inf, nil
}

func (s *Store) ListInfluencers(ctx context.Context, filter InfluencerFilter) ([]Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE 1=1`
	var args []any
	if filter.Network != "" {
		query += ` AND network = ?`
		args = append(args, filter.Network)
	}
	if filter.Classification != "" {
		query += ` AND classification = ?`
		args = append(args, filter.Classification)
	}
	if filter.Search != "" {
		query += ` AND (LOWER(handle) LIKE ? OR LOWER(display_name) LIKE ?)`
		like := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY display_name, handle`

	out := []Influencer{}
	if err := s.sel(ctx, s.db, &out, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list influencers", err)
		return nil, fmt.Errorf("failed to list influencers: %w", err)
	}
	return out, nil
}

const sqlUpdateInfluencer = `
UPDATE influencers SET
    handle = COALESCE(?, handle),
    display_name = COALESCE(?, display_name),
    followers = COALESCE(?, followers),
    engagement_rate = COALESCE(?, engagement_rate),
    air_score = COALESCE(?, air_score),
    photo_url = COALESCE(?, photo_url),
    profile_id = COALESCE(?, profile_id),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdateInfluencer(ctx context.Context, id uuid.UUID, params UpdateInfluencerParams) (Influencer, error) {
	if params.Handle != nil {
		h := normalizeHandle(*params.Handle)
		params.Handle = &h
	}
	res, err := s.exec(ctx, s.db, sqlUpdateInfluencer,
		params.Handle, params.DisplayName, params.Followers, params.EngagementRate, params.AirScore,
		params.PhotoURL, params.ProfileID, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update influencer", err)
		return Influencer{}, fmt.Errorf("failed to update influencer: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Influencer{}, err
	}
	return s.GetInfluencerByID(ctx, id)
}

const sqlSetInfluencerClassification = `UPDATE influencers SET classification = ?, updated_at = ? WHERE id = ?`

// SetInfluencerClassification is the explicit tier recompute path.
func (s *Store) SetInfluencerClassification(ctx context.Context, id uuid.UUID, classification string) error {
	res, err := s.exec(ctx, s.db, sqlSetInfluencerClassification, classification, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to set classification", err)
		return fmt.Errorf("failed to set classification: %w", err)
	}
	return affectedOrNotFound(res)
}

const (
	sqlSetLinked      = `UPDATE influencers SET linked_influencer_id = ?, updated_at = ? WHERE id = ?`
	sqlClearLinksTo   = `UPDATE influencers SET linked_influencer_id = NULL, updated_at = ? WHERE linked_influencer_id = ?`
	sqlClearLinksFrom = `UPDATE influencers SET linked_influencer_id = NULL, updated_at = ? WHERE id = ?`
)

// LinkInfluencers makes a and b point at each other, first dissolving any
// previous link either side had.
func (s *Store) LinkInfluencers(ctx context.Context, a, b uuid.UUID) error {
	if a == b {
		return fmt.Errorf("an influencer cannot be linked to itself: %w", domain.ErrBadInput)
	}
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, id := range []uuid.UUID{a, b} {
			if _, err := s.getInfluencer(ctx, tx, id); err != nil {
				return err
			}
		}
		ts := now()
		for _, id := range []uuid.UUID{a, b} {
			if _, err := s.exec(ctx, tx, sqlClearLinksTo, ts, id); err != nil {
				return fmt.Errorf("failed to clear links: %w", err)
			}
			if _, err := s.exec(ctx, tx, sqlClearLinksFrom, ts, id); err != nil {
				return fmt.Errorf("failed to clear links: %w", err)
			}
		}
		if _, err := s.exec(ctx, tx, sqlSetLinked, b, ts, a); err != nil {
			return fmt.Errorf("failed to link influencers: %w", err)
		}
		if _, err := s.exec(ctx, tx, sqlSetLinked, a, ts, b); err != nil {
			return fmt.Errorf("failed to link influencers: %w", err)
		}
		return nil
	})
}

// UnlinkInfluencer clears the link on id and on its partner.
func (s *Store) UnlinkInfluencer(ctx context.Context, id uuid.UUID) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.getInfluencer(ctx, tx, id); err != nil {
			return err
		}
		ts := now()
		if _, err := s.exec(ctx, tx, sqlClearLinksTo, ts, id); err != nil {
			return fmt.Errorf("failed to unlink influencer: %w", err)
		}
		if _, err := s.exec(ctx, tx, sqlClearLinksFrom, ts, id); err != nil {
			return fmt.Errorf("failed to unlink influencer: %w", err)
		}
		return nil
	})
}

const sqlDeleteInfluencer = `DELETE FROM influencers WHERE id = ?`

func (s *Store) DeleteInfluencer(ctx context.Context, id uuid.UUID) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.exec(ctx, tx, sqlClearLinksTo, now(), id); err != nil {
			return fmt.Errorf("failed to unlink influencer: %w", err)
		}
		res, err := s.exec(ctx, tx, sqlDeleteInfluencer, id)
		if err != nil {
			s.logger.Error(ctx, "failed to delete influencer", err)
			return fmt.Errorf("failed to delete influencer: %w", err)
		}
		return affectedOrNotFound(res)
	})
}

const sqlCountInfluencers = `SELECT COUNT(*) FROM influencers`

func (s *Store) CountInfluencers(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountInfluencers); err != nil {
		return 0, fmt.Errorf("failed to count influencers: %w", err)
	}
	return n, nil
}

const sqlCountEdgesByInfluencer = `SELECT COUNT(*) FROM campaign_influencers WHERE influencer_id = ?`

func (s *Store) CountCampaignsByInfluencer(ctx context.Context, influencerID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountEdgesByInfluencer, influencerID); err != nil {
		return 0, fmt.Errorf("failed to count influencer campaigns: %w", err)
	}
	return n, nil
}

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "@"))
}
