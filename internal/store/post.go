package store

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

type CreatePostParams struct {
	CampaignInfluencerID uuid.UUID
	Format               string
	Platform             string
	PublicationDate      *time.Time
	Permalink            *string
	Shortcode            *string
	Caption              *string
	Thumbnails           []string
	Metrics              domain.PostMetrics
	ScreensCount         int
	ExternalID           *string
}

type UpdatePostParams struct {
	Format          *string
	Platform        *string
	PublicationDate *time.Time
	Permalink       *string
	Shortcode       *string
	Caption         *string
	Thumbnails      *[]string
	Metrics         *domain.PostMetrics
	ScreensCount    *int
}

const postColumns = `id, campaign_influencer_id, campaign_id, influencer_id, format, platform, publication_date,
    permalink, shortcode, caption, thumbnails, metrics, screens_count, external_id, created_at, updated_at`

const sqlCreatePost = `
INSERT INTO posts (id, campaign_influencer_id, campaign_id, influencer_id, format, platform, publication_date,
    permalink, shortcode, caption, thumbnails, metrics, screens_count, external_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreatePost attaches a post to an existing edge; campaign and influencer ids
// are copied from the edge.
func (s *Store) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	edge, err := s.GetCampaignInfluencer(ctx, params.CampaignInfluencerID)
	if err != nil {
		return Post{}, err
	}
	screens := params.ScreensCount
	if screens < 1 {
		screens = 1
	}
	id := uuid.New()
	ts := now()
	_, err = s.exec(ctx, s.db, sqlCreatePost,
		id, edge.ID, edge.CampaignID, edge.InfluencerID, params.Format, params.Platform, params.PublicationDate,
		params.Permalink, params.Shortcode, params.Caption, NewJSON(orEmpty(params.Thumbnails)),
		NewJSON(params.Metrics), screens, params.ExternalID, ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to create post", err)
		return Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return s.GetPostByID(ctx, id)
}

const sqlGetPostByID = `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

func (s *Store) GetPostByID(ctx context.Context, id uuid.UUID) (Post, error) {
	var p Post
	if err := s.get(ctx, s.db, &p, sqlGetPostByID, id); err != nil {
		return Post{}, s.notFound(ctx, err, "get post by id")
	}
	return p, nil
}

const sqlGetPostByShortcode = `SELECT ` + postColumns + ` FROM posts WHERE campaign_id = ? AND shortcode = ?`

func (s *Store) GetPostByShortcode(ctx context.Context, campaignID uuid.UUID, shortcode string) (Post, error) {
	var p Post
	if err := s.get(ctx, s.db, &p, sqlGetPostByShortcode, campaignID, shortcode); err != nil {
		return Post{}, s.notFound(ctx, err, "get post by shortcode")
	}
	return p, nil
}

const sqlListPostsByCampaign = `SELECT ` + postColumns + ` FROM posts WHERE campaign_id = ? ORDER BY publication_date, created_at`

func (s *Store) ListPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Post, error) {
	out := []Post{}
	if err := s.sel(ctx, s.reader(ctx), &out, sqlListPostsByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list posts", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return out, nil
}

const sqlListPostsByEdge = `SELECT ` + postColumns + ` FROM posts WHERE campaign_influencer_id = ? ORDER BY publication_date, created_at`

func (s *Store) ListPostsByCampaignInfluencer(ctx context.Context, edgeID uuid.UUID) ([]Post, error) {
	out := []Post{}
	if err := s.sel(ctx, s.db, &out, sqlListPostsByEdge, edgeID); err != nil {
		s.logger.Error(ctx, "failed to list edge posts", err)
		return nil, fmt.Errorf("failed to list edge posts: %w", err)
	}
	return out, nil
}

const sqlUpdatePost = `
UPDATE posts SET
    format = COALESCE(?, format),
    platform = COALESCE(?, platform),
    publication_date = COALESCE(?, publication_date),
    permalink = COALESCE(?, permalink),
    shortcode = COALESCE(?, shortcode),
    caption = COALESCE(?, caption),
    thumbnails = COALESCE(?, thumbnails),
    metrics = COALESCE(?, metrics),
    screens_count = COALESCE(?, screens_count),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdatePost(ctx context.Context, id uuid.UUID, params UpdatePostParams) (Post, error) {
	res, err := s.exec(ctx, s.db, sqlUpdatePost,
		params.Format, params.Platform, params.PublicationDate, params.Permalink, params.Shortcode,
		params.Caption, jsonArg(params.Thumbnails), jsonArg(params.Metrics), params.ScreensCount, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update post", err)
		return Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Post{}, err
	}
	return s.GetPostByID(ctx, id)
}

const sqlDeletePost = `DELETE FROM posts WHERE id = ?`

func (s *Store) DeletePost(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeletePost, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete post", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountPostsByCampaign = `SELECT COUNT(*) FROM posts WHERE campaign_id = ?`

func (s *Store) CountPostsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountPostsByCampaign, campaignID); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}
