package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateCommentParams struct {
	CampaignID   uuid.UUID
	PostURL      string
	InfluencerID *uuid.UUID
	ExternalID   string
	Author       string
	AuthorName   string
	Text         string
	Likes        int64
	Category     string
	Classified   bool
	CommentedAt  *time.Time
}

// CommentClassification is the outcome applied to one stored comment.
type CommentClassification struct {
	ID         uuid.UUID
	Category   string
	Classified bool
}

type CommentFilter struct {
	PostURL  string
	Category string
	Limit    int
}

type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

const commentColumns = `id, campaign_id, post_url, influencer_id, external_id, author, author_name, text, likes,
    category, classified, commented_at, created_at`

const sqlCreateComment = `
INSERT INTO comments (id, campaign_id, post_url, influencer_id, external_id, author, author_name, text, likes,
    category, classified, commented_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateComments appends every comment in a single transaction and returns
// them in input order.
func (s *Store) CreateComments(ctx context.Context, params []CreateCommentParams) ([]Comment, error) {
	out := make([]Comment, 0, len(params))
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		ts := now()
		for _, p := range params {
			c := Comment{
				ID:           uuid.New(),
				CampaignID:   p.CampaignID,
				PostURL:      p.PostURL,
				InfluencerID: p.InfluencerID,
				ExternalID:   p.ExternalID,
				Author:       p.Author,
				AuthorName:   p.AuthorName,
				Text:         p.Text,
				Likes:        p.Likes,
				Category:     p.Category,
				Classified:   p.Classified,
				CommentedAt:  p.CommentedAt,
				CreatedAt:    ts,
			}
			_, err := s.exec(ctx, tx, sqlCreateComment,
				c.ID, c.CampaignID, c.PostURL, c.InfluencerID, c.ExternalID, c.Author, c.AuthorName,
				c.Text, c.Likes, c.Category, c.Classified, c.CommentedAt, c.CreatedAt)
			if err != nil {
				s.logger.Error(ctx, "failed to create comment", err)
				return fmt.Errorf("failed to create comment: %w", err)
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

const sqlGetCommentByID = `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`

func (s *Store) GetCommentByID(ctx context.Context, id uuid.UUID) (Comment, error) {
	var c Comment
	if err := s.get(ctx, s.db, &c, sqlGetCommentByID, id); err != nil {
		return Comment{}, s.notFound(ctx, err, "get comment by id")
	}
	return c, nil
}

// ListComments returns a campaign's comments oldest first.
func (s *Store) ListComments(ctx context.Context, campaignID uuid.UUID, filter CommentFilter) ([]Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE campaign_id = ?`
	args := []any{campaignID}
	if filter.PostURL != "" {
		query += ` AND post_url = ?`
		args = append(args, filter.PostURL)
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY created_at, id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}

	out := []Comment{}
	if err := s.sel(ctx, s.reader(ctx), &out, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list comments", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return out, nil
}

const sqlUpdateCommentClassification = `UPDATE comments SET category = ?, classified = ? WHERE id = ?`

// UpdateCommentClassifications rewrites category and classified in place.
func (s *Store) UpdateCommentClassifications(ctx context.Context, updates []CommentClassification) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, u := range updates {
			if _, err := s.exec(ctx, tx, sqlUpdateCommentClassification, u.Category, u.Classified, u.ID); err != nil {
				s.logger.Error(ctx, "failed to update comment classification", err)
				return fmt.Errorf("failed to update comment classification: %w", err)
			}
		}
		return nil
	})
}

const sqlCountCommentsByCategory = `
SELECT category, COUNT(*) AS count FROM comments
WHERE campaign_id = ?
GROUP BY category
ORDER BY count DESC, category`

func (s *Store) CountCommentsByCategory(ctx context.Context, campaignID uuid.UUID) ([]CategoryCount, error) {
	out := []CategoryCount{}
	if err := s.sel(ctx, s.reader(ctx), &out, sqlCountCommentsByCategory, campaignID); err != nil {
		s.logger.Error(ctx, "failed to count comments by category", err)
		return nil, fmt.Errorf("failed to count comments by category: %w", err)
	}
	return out, nil
}

const sqlCountComments = `SELECT COUNT(*) FROM comments WHERE campaign_id = ?`

func (s *Store) CountComments(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountComments, campaignID); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return n, nil
}

const sqlDeleteCommentsByPost = `DELETE FROM comments WHERE campaign_id = ? AND post_url = ?`

// DeleteCommentsByPost is the explicit "replace" path for a post's comments.
func (s *Store) DeleteCommentsByPost(ctx context.Context, campaignID uuid.UUID, postURL string) (int, error) {
	res, err := s.exec(ctx, s.db, sqlDeleteCommentsByPost, campaignID, postURL)
	if err != nil {
		s.logger.Error(ctx, "failed to delete comments", err)
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

const sqlDeleteComment = `DELETE FROM comments WHERE id = ?`

func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteComment, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete comment", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return affectedOrNotFound(res)
}
