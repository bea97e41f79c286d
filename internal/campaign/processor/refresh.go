package processor

import (
	"context"
	"errors"

	"air-relatorios/internal/clients/profiles"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// refreshWindowDays is how far around the publication date the posts search
// looks for a post being refreshed.
const refreshWindowDays = 3

// RefreshResult counts what a refresh run did.
type RefreshResult struct {
	Campaigns int `json:"campaigns"`
	Checked   int `json:"checked"`
	Updated   int `json:"updated"`
	Missing   int `json:"missing"`
	Failed    int `json:"failed"`
}

func (r *RefreshResult) add(o RefreshResult) {
	r.Campaigns += o.Campaigns
	r.Checked += o.Checked
	r.Updated += o.Updated
	r.Missing += o.Missing
	r.Failed += o.Failed
}

// RefreshDynamicCampaigns refreshes every campaign in dynamic data mode.
// A failing campaign is logged and the run moves on.
func (p *CampaignProcessor) RefreshDynamicCampaigns(ctx context.Context) (RefreshResult, error) {
	campaigns, err := p.store.ListCampaigns(ctx, store.CampaignFilter{DataMode: string(domain.DataModeDynamic)})
	if err != nil {
		p.logger.Error(ctx, "failed to list dynamic campaigns", err)
		return RefreshResult{}, err
	}

	var total RefreshResult
	for _, c := range campaigns {
		res, err := p.refresh(ctx, c)
		if err != nil {
			if ctx.Err() != nil {
				return total, ctx.Err()
			}
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: c.ID.String()}),
				"failed to refresh campaign", err)
			continue
		}
		total.add(res)
	}
	p.logger.Info(ctx, "dynamic campaigns refreshed",
		observability.Field{Key: "campaigns", Value: total.Campaigns},
		observability.Field{Key: "checked", Value: total.Checked},
		observability.Field{Key: "updated", Value: total.Updated},
		observability.Field{Key: "missing", Value: total.Missing},
		observability.Field{Key: "failed", Value: total.Failed},
	)
	return total, nil
}

// RefreshCampaign re-fetches the counters of every dated post with a
// shortcode whose influencer has a profile id.
func (p *CampaignProcessor) RefreshCampaign(ctx context.Context, campaignID uuid.UUID) (RefreshResult, error) {
	campaign, err := p.GetCampaign(ctx, campaignID)
	if err != nil {
		return RefreshResult{}, err
	}
	return p.refresh(ctx, campaign)
}

func (p *CampaignProcessor) refresh(ctx context.Context, campaign store.Campaign) (RefreshResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})

	edges, err := p.store.ListCampaignInfluencers(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign influencers", err)
		return RefreshResult{}, err
	}
	profileOf := make(map[uuid.UUID]string, len(edges))
	for _, e := range edges {
		if e.ProfileID != nil && *e.ProfileID != "" {
			profileOf[e.ID] = *e.ProfileID
		}
	}
	posts, err := p.store.ListPostsByCampaign(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list posts", err)
		return RefreshResult{}, err
	}

	res := RefreshResult{Campaigns: 1}
	for _, post := range posts {
		profileID, ok := profileOf[post.CampaignInfluencerID]
		if !ok || post.Shortcode == nil || *post.Shortcode == "" || post.PublicationDate == nil {
			continue
		}
		res.Checked++

		item, err := p.findAround(ctx, profileID, post)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			res.Failed++
			p.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "post_id", Value: post.ID.String()},
			), "failed to refresh post", err)
			continue
		}
		if item == nil {
			res.Missing++
			continue
		}

		fresh := item.Counters.Metrics()
		old := post.Metrics.V
		fresh.LinkClicks = old.LinkClicks
		fresh.CouponCode = old.CouponCode
		fresh.CouponConversions = old.CouponConversions
		if fresh == old {
			continue
		}
		if _, err := p.store.UpdatePost(ctx, post.ID, store.UpdatePostParams{Metrics: &fresh}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(ctx, "failed to update refreshed post", err)
			return res, err
		}
		res.Updated++
	}
	return res, nil
}

// findAround searches the profile's posts published within a few days of the
// stored publication date, across every page.
func (p *CampaignProcessor) findAround(ctx context.Context, profileID string, post store.Post) (*profiles.PostItem, error) {
	day := domain.Day(*post.PublicationDate)
	filter := profiles.PostFilter{
		ProfileID: profileID,
		Start:     day.AddDate(0, 0, -refreshWindowDays),
		End:       day.AddDate(0, 0, refreshWindowDays),
	}
	for filter.Page = 1; ; filter.Page++ {
		page, err := p.posts.SearchPosts(ctx, filter)
		if err != nil {
			return nil, err
		}
		for i := range page.Items {
			if page.Items[i].ShortcodeID() == *post.Shortcode {
				return &page.Items[i], nil
			}
		}
		if filter.Page >= page.Pages || len(page.Items) == 0 {
			return nil, nil
		}
	}
}
