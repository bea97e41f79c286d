package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"air-relatorios/internal/clients/profiles"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// PostParams describes a post typed in by an operator.
type PostParams struct {
	Format          string
	Platform        string
	PublicationDate *time.Time
	Permalink       *string
	Caption         *string
	Thumbnails      []string
	Metrics         domain.PostMetrics
	ScreensCount    int
}

type UpdatePostParams struct {
	Format          *string
	Platform        *string
	PublicationDate *time.Time
	Permalink       *string
	Caption         *string
	Thumbnails      *[]string
	Metrics         *domain.PostMetrics
	ScreensCount    *int
}

// CreatePost adds a post to an attached influencer. The shortcode is taken
// from the permalink and the platform defaults to the influencer's network.
func (p *CampaignProcessor) CreatePost(ctx context.Context, campaignID, edgeID uuid.UUID, params PostParams) (store.Post, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "edge_id", Value: edgeID.String()},
	)

	edge, err := p.edge(ctx, campaignID, edgeID)
	if err != nil {
		return store.Post{}, err
	}
	format, err := domain.ParseFormat(params.Format)
	if err != nil {
		return store.Post{}, err
	}
	screens, err := screensCount(format, params.ScreensCount)
	if err != nil {
		return store.Post{}, err
	}
	if negativeMetrics(params.Metrics) {
		return store.Post{}, ErrNegativeValue
	}
	platform := strings.TrimSpace(params.Platform)
	if platform == "" {
		inf, err := p.influencer(ctx, edge.InfluencerID)
		if err != nil {
			return store.Post{}, err
		}
		platform = inf.Network
	}

	post, err := p.store.CreatePost(ctx, store.CreatePostParams{
		CampaignInfluencerID: edgeID,
		Format:               string(format),
		Platform:             platform,
		PublicationDate:      params.PublicationDate,
		Permalink:            blankToNil(params.Permalink),
		Shortcode:            shortcodeOf(params.Permalink),
		Caption:              params.Caption,
		Thumbnails:           params.Thumbnails,
		Metrics:              params.Metrics,
		ScreensCount:         screens,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create post", err)
		return store.Post{}, err
	}
	return post, nil
}

// ListPosts returns the posts of one attached influencer, or of the whole
// campaign when edgeID is nil.
func (p *CampaignProcessor) ListPosts(ctx context.Context, campaignID uuid.UUID, edgeID *uuid.UUID) ([]store.Post, error) {
	if edgeID != nil {
		if _, err := p.edge(ctx, campaignID, *edgeID); err != nil {
			return nil, err
		}
		posts, err := p.store.ListPostsByCampaignInfluencer(ctx, *edgeID)
		if err != nil {
			p.logger.Error(ctx, "failed to list posts", err)
			return nil, err
		}
		return posts, nil
	}
	if _, err := p.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	posts, err := p.store.ListPostsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list posts", err)
		return nil, err
	}
	return posts, nil
}

func (p *CampaignProcessor) UpdatePost(ctx context.Context, campaignID, postID uuid.UUID, params UpdatePostParams) (store.Post, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "post_id", Value: postID.String()},
	)

	current, err := p.post(ctx, campaignID, postID)
	if err != nil {
		return store.Post{}, err
	}

	update := store.UpdatePostParams{
		PublicationDate: params.PublicationDate,
		Caption:         params.Caption,
		Thumbnails:      params.Thumbnails,
		Metrics:         params.Metrics,
	}
	format, err := domain.ParseFormat(current.Format)
	if err != nil {
		format = domain.Format(current.Format)
	}
	if params.Format != nil {
		if format, err = domain.ParseFormat(*params.Format); err != nil {
			return store.Post{}, err
		}
		f := string(format)
		update.Format = &f
	}
	screens := current.ScreensCount
	if params.ScreensCount != nil {
		screens = *params.ScreensCount
	}
	if params.Format != nil || params.ScreensCount != nil {
		n, err := screensCount(format, screens)
		if err != nil {
			return store.Post{}, err
		}
		update.ScreensCount = &n
	}
	if params.Metrics != nil && negativeMetrics(*params.Metrics) {
		return store.Post{}, ErrNegativeValue
	}
	if params.Platform != nil {
		if v := strings.TrimSpace(*params.Platform); v != "" {
			update.Platform = &v
		}
	}
	if params.Permalink != nil {
		link := strings.TrimSpace(*params.Permalink)
		update.Permalink = &link
		code := domain.ExtractPostID(link)
		update.Shortcode = &code
	}

	post, err := p.store.UpdatePost(ctx, postID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Post{}, ErrPostNotFound
		}
		p.logger.Error(ctx, "failed to update post", err)
		return store.Post{}, err
	}
	return post, nil
}

func (p *CampaignProcessor) DeletePost(ctx context.Context, campaignID, postID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "post_id", Value: postID.String()},
	)
	if _, err := p.post(ctx, campaignID, postID); err != nil {
		return err
	}
	if err := p.store.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		p.logger.Error(ctx, "failed to delete post", err)
		return err
	}
	return nil
}

// AddPostByLink looks the link up among the influencer's recent posts and
// stores the match with its current counters. budgetDays <= 0 uses the
// configured lookup budget.
func (p *CampaignProcessor) AddPostByLink(ctx context.Context, campaignID, edgeID uuid.UUID, link string, budgetDays int) (store.Post, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "edge_id", Value: edgeID.String()},
	)

	code := domain.ExtractPostID(link)
	if code == "" {
		return store.Post{}, profiles.ErrInvalidPostURL
	}
	edge, err := p.edge(ctx, campaignID, edgeID)
	if err != nil {
		return store.Post{}, err
	}
	inf, err := p.influencer(ctx, edge.InfluencerID)
	if err != nil {
		return store.Post{}, err
	}
	if inf.ProfileID == nil || *inf.ProfileID == "" {
		return store.Post{}, ErrProfileMissing
	}

	if _, err := p.store.GetPostByShortcode(ctx, campaignID, code); err == nil {
		return store.Post{}, ErrPostAlreadyAdded
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing post", err)
		return store.Post{}, err
	}

	item, err := p.posts.FindPostByLink(ctx, *inf.ProfileID, link, budgetDays)
	if err != nil {
		p.logger.Error(ctx, "failed to look up post by link", err)
		return store.Post{}, err
	}
	if item == nil {
		return store.Post{}, ErrPostNotFoundByLink
	}

	permalink := item.Permalink
	if permalink == "" {
		permalink = strings.TrimSpace(link)
	}
	params := store.CreatePostParams{
		CampaignInfluencerID: edgeID,
		Format:               string(formatOf(item.Type, inf.Network)),
		Platform:             inf.Network,
		PublicationDate:      item.PostedTime(),
		Permalink:            &permalink,
		Shortcode:            &code,
		Caption:              blankToNil(&item.Caption),
		Metrics:              item.Counters.Metrics(),
		ScreensCount:         1,
		ExternalID:           blankToNil(&item.PostID),
	}
	if item.Thumbnail != "" {
		params.Thumbnails = []string{item.Thumbnail}
	}

	post, err := p.store.CreatePost(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to store post found by link", err)
		return store.Post{}, err
	}
	p.logger.Info(ctx, "post added by link", observability.Field{Key: "post_id", Value: post.ID.String()})
	return post, nil
}

// post loads a post and checks it belongs to campaignID.
func (p *CampaignProcessor) post(ctx context.Context, campaignID, postID uuid.UUID) (store.Post, error) {
	post, err := p.store.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Post{}, ErrPostNotFound
		}
		p.logger.Error(ctx, "failed to get post", err)
		return store.Post{}, err
	}
	if post.CampaignID != campaignID {
		return store.Post{}, ErrPostNotFound
	}
	return post, nil
}

// screensCount keeps Stories at one screen or more; other formats always
// count a single screen.
func screensCount(format domain.Format, n int) (int, error) {
	if format != domain.FormatStories {
		return 1, nil
	}
	if n == 0 {
		return 1, nil
	}
	if n < 1 {
		return 0, ErrInvalidScreensCount
	}
	return n, nil
}

func negativeMetrics(m domain.PostMetrics) bool {
	for _, v := range []int64{m.Views, m.Reach, m.Interactions, m.Impressions, m.Likes, m.CommentsCount, m.Shares, m.Saves, m.LinkClicks} {
		if v < 0 {
			return true
		}
	}
	return m.CouponConversions != nil && *m.CouponConversions < 0
}

// formatOf maps the API post type, falling back to the network's main format.
func formatOf(postType, network string) domain.Format {
	if f, err := domain.ParseFormat(postType); err == nil {
		return f
	}
	switch domain.Network(network) {
	case domain.NetworkTikTok:
		return domain.FormatTikTok
	case domain.NetworkYouTube:
		return domain.FormatYouTube
	}
	return domain.FormatFeed
}

func shortcodeOf(permalink *string) *string {
	if permalink == nil {
		return nil
	}
	if code := domain.ExtractPostID(*permalink); code != "" {
		return &code
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
