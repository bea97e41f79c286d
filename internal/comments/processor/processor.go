package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"air-relatorios/internal/clients/aiwebhook"
	"air-relatorios/internal/comments"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// CommentsStore defines the database operations required by CommentsProcessor
type CommentsStore interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	GetInfluencerByID(ctx context.Context, id uuid.UUID) (store.Influencer, error)
	CreateComments(ctx context.Context, params []store.CreateCommentParams) ([]store.Comment, error)
	ListComments(ctx context.Context, campaignID uuid.UUID, filter store.CommentFilter) ([]store.Comment, error)
	UpdateCommentClassifications(ctx context.Context, updates []store.CommentClassification) error
	CountCommentsByCategory(ctx context.Context, campaignID uuid.UUID) ([]store.CategoryCount, error)
	DeleteCommentsByPost(ctx context.Context, campaignID uuid.UUID, postURL string) (int, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

// Classifier tags comments with the campaign's categories.
type Classifier interface {
	ClassifyComments(ctx context.Context, req aiwebhook.ClassifyRequest) ([]aiwebhook.Classification, error)
}

var (
	ErrCampaignNotFound     = fmt.Errorf("campaign not found: %w", domain.ErrNotFound)
	ErrInfluencerNotFound   = fmt.Errorf("influencer not found: %w", domain.ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("comment not found: %w", domain.ErrNotFound)
	ErrPostURLRequired      = fmt.Errorf("post url is required: %w", domain.ErrBadInput)
	ErrNoCategories         = fmt.Errorf("campaign has no comment categories: %w", domain.ErrBadInput)
	ErrNoComments           = fmt.Errorf("no comments found for this post: %w", domain.ErrNotFound)
	ErrClassificationFailed = errors.New("comment classification failed")
)

// classifyBatchSize bounds the comments sent in one classifier call.
const classifyBatchSize = 200

type CommentsProcessor struct {
	store      CommentsStore
	classifier Classifier
	logger     *observability.Logger
	now        func() time.Time
}

func New(store CommentsStore, classifier Classifier, logger *observability.Logger) CommentsProcessor {
	return CommentsProcessor{
		store:      store,
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
	}
}

type UploadParams struct {
	CampaignID   uuid.UUID
	PostURL      string
	InfluencerID *uuid.UUID
}

// Result reports what an upload or reclassification did. Classified counts
// comments the classifier answered for.
type Result struct {
	Saved      int             `json:"saved"`
	Classified int             `json:"classified"`
	Comments   []store.Comment `json:"comments"`
}

// Upload parses an ExportComments CSV, saves every comment as unclassified
// and then classifies them. When the classifier fails the comments stay
// saved and the error wraps ErrClassificationFailed. Uploads for the same
// post append.
func (p *CommentsProcessor) Upload(ctx context.Context, params UploadParams, csv io.Reader) (Result, error) {
	params.PostURL = strings.TrimSpace(params.PostURL)
	if params.PostURL == "" {
		return Result{}, ErrPostURLRequired
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
		observability.Field{Key: "post_url", Value: params.PostURL},
	)

	rows, err := comments.ParseCSV(csv)
	if err != nil {
		return Result{}, err
	}

	campaign, err := p.getCampaign(ctx, params.CampaignID)
	if err != nil {
		return Result{}, err
	}
	var handle string
	if params.InfluencerID != nil {
		inf, err := p.store.GetInfluencerByID(ctx, *params.InfluencerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return Result{}, ErrInfluencerNotFound
			}
			p.logger.Error(ctx, "failed to get influencer", err)
			return Result{}, err
		}
		handle = inf.Handle
	}

	create := make([]store.CreateCommentParams, 0, len(rows))
	for _, r := range rows {
		create = append(create, store.CreateCommentParams{
			CampaignID:   params.CampaignID,
			PostURL:      params.PostURL,
			InfluencerID: params.InfluencerID,
			ExternalID:   r.ExternalID,
			Author:       r.Username,
			AuthorName:   r.Name,
			Text:         r.Text,
			Likes:        r.Likes,
			Category:     domain.Unclassified,
			CommentedAt:  r.CommentedAt,
		})
	}
	saved, err := p.store.CreateComments(ctx, create)
	if err != nil {
		p.logger.Error(ctx, "failed to save comments", err)
		return Result{}, err
	}
	p.logger.Info(ctx, "comments saved", observability.Field{Key: "count", Value: len(saved)})

	res := Result{Saved: len(saved), Comments: saved}
	categories := campaign.CommentCategories.V
	if len(categories) == 0 || len(saved) == 0 {
		return res, nil
	}

	res.Classified, err = p.classify(ctx, campaign.ID, params.PostURL, handle, categories, res.Comments)
	return res, err
}

// Reclassify reruns the classifier over the stored comments of one post and
// updates them in place.
func (p *CommentsProcessor) Reclassify(ctx context.Context, campaignID uuid.UUID, postURL string) (Result, error) {
	postURL = strings.TrimSpace(postURL)
	if postURL == "" {
		return Result{}, ErrPostURLRequired
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "post_url", Value: postURL},
	)

	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return Result{}, err
	}
	categories := campaign.CommentCategories.V
	if len(categories) == 0 {
		return Result{}, ErrNoCategories
	}

	stored, err := p.store.ListComments(ctx, campaignID, store.CommentFilter{PostURL: postURL})
	if err != nil {
		p.logger.Error(ctx, "failed to list comments", err)
		return Result{}, err
	}
	if len(stored) == 0 {
		return Result{}, ErrNoComments
	}

	var handle string
	if id := stored[0].InfluencerID; id != nil {
		if inf, err := p.store.GetInfluencerByID(ctx, *id); err == nil {
			handle = inf.Handle
		}
	}

	res := Result{Saved: len(stored), Comments: stored}
	res.Classified, err = p.classify(ctx, campaignID, postURL, handle, categories, res.Comments)
	return res, err
}

// classify sends comments in batches, writes each batch's verdicts back and
// updates the slice in place. It stops at the first failing batch.
func (p *CommentsProcessor) classify(ctx context.Context, campaignID uuid.UUID, postURL, handle string, categories []domain.CommentCategory, list []store.Comment) (int, error) {
	reqCategories := make([]aiwebhook.Category, 0, len(categories))
	for _, c := range categories {
		reqCategories = append(reqCategories, aiwebhook.Category{Name: c.Name, Description: c.Description})
	}

	classified := 0
	for start := 0; start < len(list); start += classifyBatchSize {
		batch := list[start:min(start+classifyBatchSize, len(list))]

		req := aiwebhook.ClassifyRequest{
			Action:     aiwebhook.ActionClassifyComments,
			CampaignID: campaignID.String(),
			PostURL:    postURL,
			Influencer: handle,
			Categories: reqCategories,
			Timestamp:  p.now().UTC(),
		}
		for _, c := range batch {
			req.Comments = append(req.Comments, aiwebhook.CommentItem{
				ID:       c.ID.String(),
				Username: c.Author,
				Text:     c.Text,
				Likes:    c.Likes,
			})
		}

		verdicts, err := p.classifier.ClassifyComments(ctx, req)
		if err != nil {
			p.logger.WarnWithError(ctx, "comment classification failed, comments kept as unclassified", err)
			return classified, fmt.Errorf("%w: %w", ErrClassificationFailed, err)
		}

		byID := make(map[string]map[string]bool, len(verdicts))
		for _, v := range verdicts {
			byID[strings.TrimSpace(v.CommentID)] = v.Verdicts
		}

		updates := make([]store.CommentClassification, 0, len(batch))
		for i := range batch {
			v, ok := byID[batch[i].ID.String()]
			batch[i].Category = comments.Pick(categories, v)
			batch[i].Classified = ok
			if ok {
				classified++
			}
			updates = append(updates, store.CommentClassification{
				ID:         batch[i].ID,
				Category:   batch[i].Category,
				Classified: batch[i].Classified,
			})
		}
		if err := p.store.UpdateCommentClassifications(ctx, updates); err != nil {
			p.logger.Error(ctx, "failed to save comment classifications", err)
			return classified, err
		}
	}
	p.logger.Info(ctx, "comments classified", observability.Field{Key: "classified", Value: classified})
	return classified, nil
}

func (p *CommentsProcessor) getCampaign(ctx context.Context, id uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (p *CommentsProcessor) List(ctx context.Context, campaignID uuid.UUID, filter store.CommentFilter) ([]store.Comment, error) {
	list, err := p.store.ListComments(ctx, campaignID, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to list comments", err)
		return nil, err
	}
	return list, nil
}

// Counts returns the number of comments per category, most frequent first.
func (p *CommentsProcessor) Counts(ctx context.Context, campaignID uuid.UUID) ([]store.CategoryCount, error) {
	counts, err := p.store.CountCommentsByCategory(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count comments", err)
		return nil, err
	}
	return counts, nil
}

// DeleteByPost removes every comment of a post, the explicit replace path
// before a fresh upload.
func (p *CommentsProcessor) DeleteByPost(ctx context.Context, campaignID uuid.UUID, postURL string) (int, error) {
	postURL = strings.TrimSpace(postURL)
	if postURL == "" {
		return 0, ErrPostURLRequired
	}
	n, err := p.store.DeleteCommentsByPost(ctx, campaignID, postURL)
	if err != nil {
		p.logger.Error(ctx, "failed to delete comments", err)
		return 0, err
	}
	return n, nil
}

func (p *CommentsProcessor) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommentNotFound
		}
		p.logger.Error(ctx, "failed to delete comment", err)
		return err
	}
	return nil
}
