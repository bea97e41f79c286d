package store

import (
	"context"
	"fmt"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrAlreadyAttached is returned when the influencer is already on the campaign.
var ErrAlreadyAttached = fmt.Errorf("influencer already attached to this campaign: %w", domain.ErrConflict)

type AttachInfluencerParams struct {
	CampaignID     uuid.UUID
	InfluencerID   uuid.UUID
	Cost           float64
	CustomCol1     string
	CustomCol2     string
	SpecificValues []string
	Category       string
}

type UpdateCampaignInfluencerParams struct {
	Cost           *float64
	CustomCol1     *string
	CustomCol2     *string
	SpecificValues *[]string
	Category       *string
}

const edgeColumns = `ci.id, ci.campaign_id, ci.influencer_id, ci.cost, ci.custom_col_1, ci.custom_col_2,
    ci.specific_values, ci.category, ci.created_at, ci.updated_at`

const sqlAttachInfluencer = `
INSERT INTO campaign_influencers (id, campaign_id, influencer_id, cost, custom_col_1, custom_col_2,
    specific_values, category, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// AttachInfluencer creates the campaign/influencer edge.
func (s *Store) AttachInfluencer(ctx context.Context, params AttachInfluencerParams) (CampaignInfluencer, error) {
	if _, err := s.GetCampaignInfluencerByPair(ctx, params.CampaignID, params.InfluencerID); err == nil {
		return CampaignInfluencer{}, ErrAlreadyAttached
	}
	id := uuid.New()
	ts := now()
	_, err := s.exec(ctx, s.db, sqlAttachInfluencer,
		id, params.CampaignID, params.InfluencerID, params.Cost, params.CustomCol1, params.CustomCol2,
		NewJSON(orEmpty(params.SpecificValues)), params.Category, ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to attach influencer", err)
		return CampaignInfluencer{}, fmt.Errorf("failed to attach influencer: %w", err)
	}
	return s.GetCampaignInfluencer(ctx, id)
}

const sqlGetEdge = `SELECT ` + edgeColumns + ` FROM campaign_influencers ci WHERE ci.id = ?`

func (s *Store) GetCampaignInfluencer(ctx context.Context, id uuid.UUID) (CampaignInfluencer, error) {
	var e CampaignInfluencer
	if err := s.get(ctx, s.db, &e, sqlGetEdge, id); err != nil {
		return CampaignInfluencer{}, s.notFound(ctx, err, "get campaign influencer")
	}
	return e, nil
}

const sqlGetEdgeByPair = `SELECT ` + edgeColumns + ` FROM campaign_influencers ci WHERE ci.campaign_id = ? AND ci.influencer_id = ?`

func (s *Store) GetCampaignInfluencerByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (CampaignInfluencer, error) {
	var e CampaignInfluencer
	if err := s.get(ctx, s.db, &e, sqlGetEdgeByPair, campaignID, influencerID); err != nil {
		return CampaignInfluencer{}, s.notFound(ctx, err, "get campaign influencer by pair")
	}
	return e, nil
}

const sqlListEdgeDetails = `
SELECT ` + edgeColumns + `,
    i.handle, i.display_name, i.network, i.followers, i.engagement_rate, i.air_score,
    i.classification, i.photo_url, i.profile_id
FROM campaign_influencers ci
JOIN influencers i ON i.id = ci.influencer_id
WHERE ci.campaign_id = ?
ORDER BY i.display_name, i.handle`

// ListCampaignInfluencers returns the campaign's edges joined with their influencers.
func (s *Store) ListCampaignInfluencers(ctx context.Context, campaignID uuid.UUID) ([]CampaignInfluencerDetail, error) {
	out := []CampaignInfluencerDetail{}
	if err := s.sel(ctx, s.reader(ctx), &out, sqlListEdgeDetails, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list campaign influencers", err)
		return nil, fmt.Errorf("failed to list campaign influencers: %w", err)
	}
	return out, nil
}

const sqlUpdateEdge = `
UPDATE campaign_influencers SET
    cost = COALESCE(?, cost),
    custom_col_1 = COALESCE(?, custom_col_1),
    custom_col_2 = COALESCE(?, custom_col_2),
    specific_values = COALESCE(?, specific_values),
    category = COALESCE(?, category),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdateCampaignInfluencer(ctx context.Context, id uuid.UUID, params UpdateCampaignInfluencerParams) (CampaignInfluencer, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateEdge,
		params.Cost, params.CustomCol1, params.CustomCol2, jsonArg(params.SpecificValues), params.Category, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign influencer", err)
		return CampaignInfluencer{}, fmt.Errorf("failed to update campaign influencer: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return CampaignInfluencer{}, err
	}
	return s.GetCampaignInfluencer(ctx, id)
}

const (
	sqlDeletePostsByEdge = `DELETE FROM posts WHERE campaign_influencer_id = ?`
	sqlDeleteEdge        = `DELETE FROM campaign_influencers WHERE id = ?`
)

// DetachInfluencer removes the edge and every post scoped to it.
func (s *Store) DetachInfluencer(ctx context.Context, edgeID uuid.UUID) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.exec(ctx, tx, sqlDeletePostsByEdge, edgeID); err != nil {
			s.logger.Error(ctx, "failed to delete edge posts", err)
			return fmt.Errorf("failed to delete edge posts: %w", err)
		}
		res, err := s.exec(ctx, tx, sqlDeleteEdge, edgeID)
		if err != nil {
			s.logger.Error(ctx, "failed to delete campaign influencer", err)
			return fmt.Errorf("failed to delete campaign influencer: %w", err)
		}
		return affectedOrNotFound(res)
	})
}

const sqlCountEdges = `SELECT COUNT(*) FROM campaign_influencers WHERE campaign_id = ?`

func (s *Store) CountCampaignInfluencers(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountEdges, campaignID); err != nil {
		return 0, fmt.Errorf("failed to count campaign influencers: %w", err)
	}
	return n, nil
}

const sqlListCampaignsByInfluencer = `
SELECT ` + campaignColumns + ` FROM campaigns
WHERE id IN (SELECT campaign_id FROM campaign_influencers WHERE influencer_id = ?)
ORDER BY created_at`

// ListCampaignsByInfluencer returns every campaign the influencer is attached to.
func (s *Store) ListCampaignsByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]Campaign, error) {
	out := []Campaign{}
	if err := s.sel(ctx, s.db, &out, sqlListCampaignsByInfluencer, influencerID); err != nil {
		s.logger.Error(ctx, "failed to list influencer campaigns", err)
		return nil, fmt.Errorf("failed to list influencer campaigns: %w", err)
	}
	return out, nil
}
