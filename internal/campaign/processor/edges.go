package processor

import (
	"context"
	"errors"
	"strings"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// AttachParams carries the per-campaign fields of an attached influencer.
type AttachParams struct {
	InfluencerID   uuid.UUID
	Cost           float64
	CustomCol1     string
	CustomCol2     string
	SpecificValues []string
	Category       string
}

type UpdateEdgeParams struct {
	Cost           *float64
	CustomCol1     *string
	CustomCol2     *string
	SpecificValues *[]string
	Category       *string
}

// AttachInfluencer adds a base influencer to the campaign.
func (p *CampaignProcessor) AttachInfluencer(ctx context.Context, campaignID uuid.UUID, params AttachParams) (store.CampaignInfluencer, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "influencer_id", Value: params.InfluencerID.String()},
	)

	campaign, err := p.GetCampaign(ctx, campaignID)
	if err != nil {
		return store.CampaignInfluencer{}, err
	}
	if _, err := p.influencer(ctx, params.InfluencerID); err != nil {
		return store.CampaignInfluencer{}, err
	}
	if params.Cost < 0 {
		return store.CampaignInfluencer{}, ErrNegativeValue
	}
	values, err := specificValues(campaign, params.SpecificValues)
	if err != nil {
		return store.CampaignInfluencer{}, err
	}
	category, err := p.category(ctx, params.Category)
	if err != nil {
		return store.CampaignInfluencer{}, err
	}

	edge, err := p.store.AttachInfluencer(ctx, store.AttachInfluencerParams{
		CampaignID:     campaignID,
		InfluencerID:   params.InfluencerID,
		Cost:           params.Cost,
		CustomCol1:     strings.TrimSpace(params.CustomCol1),
		CustomCol2:     strings.TrimSpace(params.CustomCol2),
		SpecificValues: values,
		Category:       category,
	})
	if err != nil {
		if !errors.Is(err, store.ErrAlreadyAttached) {
			p.logger.Error(ctx, "failed to attach influencer", err)
		}
		return store.CampaignInfluencer{}, err
	}
	p.logger.Info(ctx, "influencer attached")
	return edge, nil
}

// ListInfluencers returns the campaign's attached influencers with their
// base records.
func (p *CampaignProcessor) ListInfluencers(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignInfluencerDetail, error) {
	if _, err := p.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	edges, err := p.store.ListCampaignInfluencers(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign influencers", err)
		return nil, err
	}
	return edges, nil
}

func (p *CampaignProcessor) UpdateInfluencer(ctx context.Context, campaignID, edgeID uuid.UUID, params UpdateEdgeParams) (store.CampaignInfluencer, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "edge_id", Value: edgeID.String()},
	)

	if _, err := p.edge(ctx, campaignID, edgeID); err != nil {
		return store.CampaignInfluencer{}, err
	}
	if params.Cost != nil && *params.Cost < 0 {
		return store.CampaignInfluencer{}, ErrNegativeValue
	}

	update := store.UpdateCampaignInfluencerParams{Cost: params.Cost}
	if params.CustomCol1 != nil {
		v := strings.TrimSpace(*params.CustomCol1)
		update.CustomCol1 = &v
	}
	if params.CustomCol2 != nil {
		v := strings.TrimSpace(*params.CustomCol2)
		update.CustomCol2 = &v
	}
	if params.SpecificValues != nil {
		campaign, err := p.GetCampaign(ctx, campaignID)
		if err != nil {
			return store.CampaignInfluencer{}, err
		}
		values, err := specificValues(campaign, *params.SpecificValues)
		if err != nil {
			return store.CampaignInfluencer{}, err
		}
		update.SpecificValues = &values
	}
	if params.Category != nil {
		category, err := p.category(ctx, *params.Category)
		if err != nil {
			return store.CampaignInfluencer{}, err
		}
		update.Category = &category
	}

	edge, err := p.store.UpdateCampaignInfluencer(ctx, edgeID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignInfluencer{}, ErrEdgeNotFound
		}
		p.logger.Error(ctx, "failed to update campaign influencer", err)
		return store.CampaignInfluencer{}, err
	}
	return edge, nil
}

// DetachInfluencer removes the influencer from the campaign together with
// its posts. The base influencer is kept.
func (p *CampaignProcessor) DetachInfluencer(ctx context.Context, campaignID, edgeID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "edge_id", Value: edgeID.String()},
	)

	if _, err := p.edge(ctx, campaignID, edgeID); err != nil {
		return err
	}
	if err := p.store.DetachInfluencer(ctx, edgeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEdgeNotFound
		}
		p.logger.Error(ctx, "failed to detach influencer", err)
		return err
	}
	p.logger.Info(ctx, "influencer detached")
	return nil
}

// edge loads an edge and checks it belongs to campaignID.
func (p *CampaignProcessor) edge(ctx context.Context, campaignID, edgeID uuid.UUID) (store.CampaignInfluencer, error) {
	edge, err := p.store.GetCampaignInfluencer(ctx, edgeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignInfluencer{}, ErrEdgeNotFound
		}
		p.logger.Error(ctx, "failed to get campaign influencer", err)
		return store.CampaignInfluencer{}, err
	}
	if edge.CampaignID != campaignID {
		return store.CampaignInfluencer{}, ErrEdgeNotFound
	}
	return edge, nil
}

func (p *CampaignProcessor) influencer(ctx context.Context, id uuid.UUID) (store.Influencer, error) {
	inf, err := p.store.GetInfluencerByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Influencer{}, ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to get influencer", err)
		return store.Influencer{}, err
	}
	return inf, nil
}

// category resolves name against the catalogue, returning the stored
// spelling. Blank clears the category.
func (p *CampaignProcessor) category(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	cat, err := p.store.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnknownCategory
		}
		p.logger.Error(ctx, "failed to get category", err)
		return "", err
	}
	return cat.Name, nil
}

// specificValues checks values position by position against the campaign's
// classification axes. Blank entries leave that axis unset; an axis without
// enumerated values accepts free text.
func specificValues(campaign store.Campaign, values []string) ([]string, error) {
	axes := campaign.SpecificClassifications.V
	if len(values) > len(axes) || len(values) > domain.MaxSpecificClassifications {
		return nil, ErrTooManySpecificValues
	}
	out := make([]string, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && len(axes[i].Values) > 0 && !containsFold(axes[i].Values, v) {
			return nil, ErrUnknownSpecificValue
		}
		out[i] = v
	}
	return out, nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
