package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// ReportStore defines the database operations required by ReportProcessor
type ReportStore interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (store.Client, error)
	ListCampaignInfluencers(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignInfluencerDetail, error)
	ListPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Post, error)
	ListInsights(ctx context.Context, campaignID uuid.UUID, page string, includeExcluded bool) ([]store.Insight, error)
	CountCommentsByCategory(ctx context.Context, campaignID uuid.UUID) ([]store.CategoryCount, error)
	ListComments(ctx context.Context, campaignID uuid.UUID, filter store.CommentFilter) ([]store.Comment, error)
}

var ErrCampaignNotFound = fmt.Errorf("campaign not found: %w", domain.ErrNotFound)

type ReportProcessor struct {
	store  ReportStore
	logger *observability.Logger
}

func New(store ReportStore, logger *observability.Logger) ReportProcessor {
	return ReportProcessor{
		store:  store,
		logger: logger,
	}
}

// Load reads everything a report of the campaign needs from one snapshot.
func (p *ReportProcessor) Load(ctx context.Context, campaignID uuid.UUID) (report.Input, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	var in report.Input
	err := p.store.Snapshot(ctx, func(ctx context.Context) error {
		var err error
		in, err = p.load(ctx, campaignID)
		return err
	})
	if err != nil {
		return report.Input{}, err
	}
	return in, nil
}

func (p *ReportProcessor) load(ctx context.Context, campaignID uuid.UUID) (report.Input, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return report.Input{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return report.Input{}, err
	}

	in := report.Input{Campaign: campaign}

	in.Client, err = p.store.GetClientByID(ctx, campaign.ClientID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get client", err)
		return report.Input{}, err
	}

	if in.Edges, err = p.store.ListCampaignInfluencers(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to list campaign influencers", err)
		return report.Input{}, err
	}
	if in.Posts, err = p.store.ListPostsByCampaign(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to list posts", err)
		return report.Input{}, err
	}
	if in.Insights, err = p.store.ListInsights(ctx, campaignID, "", false); err != nil {
		p.logger.Error(ctx, "failed to list insights", err)
		return report.Input{}, err
	}
	if in.CommentCounts, err = p.store.CountCommentsByCategory(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to count comments", err)
		return report.Input{}, err
	}
	in.CommentSample, err = p.store.ListComments(ctx, campaignID, store.CommentFilter{Limit: report.CommentSampleSize})
	if err != nil {
		p.logger.Error(ctx, "failed to list comments", err)
		return report.Input{}, err
	}
	return in, nil
}

// Composer loads the campaign and prepares a composer for opts. Posts whose
// influencer is no longer attached are logged and left out.
func (p *ReportProcessor) Composer(ctx context.Context, campaignID uuid.UUID, opts report.Options) (*report.Composer, error) {
	in, err := p.Load(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	c := report.NewComposer(in, opts)
	if orphans := c.Orphans(); len(orphans) > 0 {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaignID.String()},
			observability.Field{Key: "orphan_posts", Value: len(orphans)},
		)
		p.logger.Warn(ctx, "skipping posts without an attached influencer")
	}
	return c, nil
}

// GetPage composes a single report page.
func (p *ReportProcessor) GetPage(ctx context.Context, campaignID uuid.UUID, page string, opts report.Options) (report.Payload, error) {
	pg, err := domain.ParsePage(page)
	if err != nil {
		return report.Payload{}, err
	}
	c, err := p.Composer(ctx, campaignID, opts)
	if err != nil {
		return report.Payload{}, err
	}
	return c.Compose(pg)
}

// GetAll composes every page permitted by allowed (nil means all).
func (p *ReportProcessor) GetAll(ctx context.Context, campaignID uuid.UUID, opts report.Options, allowed []string) ([]report.Payload, error) {
	c, err := p.Composer(ctx, campaignID, opts)
	if err != nil {
		return nil, err
	}
	return c.ComposeAll(allowed)
}

// Dataset builds the metrics bundle the AI generates insights from.
func (p *ReportProcessor) Dataset(ctx context.Context, campaignID uuid.UUID, opts report.Options) (report.Dataset, error) {
	c, err := p.Composer(ctx, campaignID, opts)
	if err != nil {
		return report.Dataset{}, err
	}
	return c.Dataset(), nil
}
