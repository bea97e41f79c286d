package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"air-relatorios/internal/clients/aiwebhook"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// InsightsStore defines the database operations required by InsightsProcessor
type InsightsStore interface {
	CreateInsight(ctx context.Context, params store.CreateInsightParams) (store.Insight, error)
	GetInsightByID(ctx context.Context, id uuid.UUID) (store.Insight, error)
	ListInsights(ctx context.Context, campaignID uuid.UUID, page string, includeExcluded bool) ([]store.Insight, error)
	UpdateInsight(ctx context.Context, id uuid.UUID, params store.UpdateInsightParams) (store.Insight, error)
	SetInsightActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteInsight(ctx context.Context, id uuid.UUID) error
}

// DatasetSource builds the metrics bundle of a campaign.
type DatasetSource interface {
	Dataset(ctx context.Context, campaignID uuid.UUID, opts report.Options) (report.Dataset, error)
}

// Generator writes insight cards from a metrics bundle.
type Generator interface {
	GenerateInsights(ctx context.Context, req aiwebhook.InsightRequest) ([]aiwebhook.Insight, error)
	RegenerateInsight(ctx context.Context, req aiwebhook.InsightRequest, current aiwebhook.Insight) (aiwebhook.Insight, error)
}

var (
	ErrInsightNotFound = fmt.Errorf("insight not found: %w", domain.ErrNotFound)
	ErrInvalidType     = fmt.Errorf("unknown insight type: %w", domain.ErrBadInput)
	ErrTitleRequired   = fmt.Errorf("insight title is required: %w", domain.ErrBadInput)
	ErrBodyRequired    = fmt.Errorf("insight text is required: %w", domain.ErrBadInput)
	ErrEmptyAnswer     = errors.New("the AI returned no insight")
)

type InsightsProcessor struct {
	store     InsightsStore
	datasets  DatasetSource
	generator Generator
	logger    *observability.Logger
	now       func() time.Time
}

func New(store InsightsStore, datasets DatasetSource, generator Generator, logger *observability.Logger) InsightsProcessor {
	return InsightsProcessor{
		store:     store,
		datasets:  datasets,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// PageOutcome is the result of generating one page during a bulk run. Err
// stays server side; handlers fill Error with a user-facing message.
type PageOutcome struct {
	Page     domain.Page          `json:"page"`
	OK       bool                 `json:"ok"`
	Created  int                  `json:"created"`
	Insights []report.InsightView `json:"insights,omitempty"`
	Err      error                `json:"-"`
	Error    string               `json:"error,omitempty"`
}

// List returns a campaign's insights for page (empty for all pages).
func (p *InsightsProcessor) List(ctx context.Context, campaignID uuid.UUID, page string, includeExcluded bool) ([]report.InsightView, error) {
	if page != "" {
		if _, err := domain.ParseInsightPage(page); err != nil {
			return nil, err
		}
	}
	list, err := p.store.ListInsights(ctx, campaignID, page, includeExcluded)
	if err != nil {
		p.logger.Error(ctx, "failed to list insights", err)
		return nil, err
	}
	out := make([]report.InsightView, 0, len(list))
	for _, in := range list {
		out = append(out, report.NewInsightView(in))
	}
	return out, nil
}

// GeneratePage asks the AI for insights of one page and appends them. Existing
// insights are kept.
func (p *InsightsProcessor) GeneratePage(ctx context.Context, campaignID uuid.UUID, page string, opts report.Options) ([]report.InsightView, error) {
	pg, err := domain.ParseInsightPage(page)
	if err != nil {
		return nil, err
	}
	data, err := p.dataset(ctx, campaignID, opts)
	if err != nil {
		return nil, err
	}
	return p.generate(ctx, campaignID, pg, data)
}

// GenerateAll runs the insight pages one after another. A failing page does
// not stop the run; its outcome carries the error. progress, when set, is
// called after each page.
func (p *InsightsProcessor) GenerateAll(ctx context.Context, campaignID uuid.UUID, opts report.Options, progress func(PageOutcome)) ([]PageOutcome, error) {
	data, err := p.dataset(ctx, campaignID, opts)
	if err != nil {
		return nil, err
	}

	outcomes := make([]PageOutcome, 0, len(domain.InsightPages))
	for _, pg := range domain.InsightPages {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out := PageOutcome{Page: pg}
		views, err := p.generate(ctx, campaignID, pg, data)
		if err != nil {
			out.Err = err
		} else {
			out.OK = true
			out.Created = len(views)
			out.Insights = views
		}
		outcomes = append(outcomes, out)
		if progress != nil {
			progress(out)
		}
	}
	return outcomes, nil
}

func (p *InsightsProcessor) dataset(ctx context.Context, campaignID uuid.UUID, opts report.Options) (json.RawMessage, error) {
	ds, err := p.datasets.Dataset(ctx, campaignID, opts)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(ds)
	if err != nil {
		p.logger.Error(ctx, "failed to encode insight dataset", err)
		return nil, err
	}
	return raw, nil
}

func (p *InsightsProcessor) generate(ctx context.Context, campaignID uuid.UUID, page domain.Page, data json.RawMessage) ([]report.InsightView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "page", Value: string(page)},
	)

	answer, err := p.generator.GenerateInsights(ctx, aiwebhook.InsightRequest{
		Page:       string(page),
		CampaignID: campaignID.String(),
		Data:       data,
		Timestamp:  p.now().UTC(),
	})
	if err != nil {
		p.logger.WarnWithError(ctx, "insight generation failed", err)
		return nil, err
	}

	views := make([]report.InsightView, 0, len(answer))
	for _, a := range answer {
		in, err := p.store.CreateInsight(ctx, store.CreateInsightParams{
			CampaignID: campaignID,
			Page:       string(page),
			Type:       string(domain.ParseInsightType(a.Type)),
			Title:      strings.TrimSpace(a.Title),
			Body:       a.Body,
			Source:     string(domain.InsightSourceAI),
		})
		if err != nil {
			p.logger.Error(ctx, "failed to save generated insight", err)
			return views, err
		}
		views = append(views, report.NewInsightView(in))
	}
	p.logger.Info(ctx, "insights generated", observability.Field{Key: "count", Value: len(views)})
	return views, nil
}

// Regenerate rewrites an existing insight in place from the current metrics.
func (p *InsightsProcessor) Regenerate(ctx context.Context, insightID uuid.UUID, opts report.Options) (report.InsightView, error) {
	current, err := p.get(ctx, insightID)
	if err != nil {
		return report.InsightView{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "insight_id", Value: insightID.String()},
		observability.Field{Key: "campaign_id", Value: current.CampaignID.String()},
	)

	data, err := p.dataset(ctx, current.CampaignID, opts)
	if err != nil {
		return report.InsightView{}, err
	}
	req := aiwebhook.InsightRequest{
		Page:       current.Page,
		CampaignID: current.CampaignID.String(),
		Data:       data,
		Timestamp:  p.now().UTC(),
	}
	answer, err := p.generator.RegenerateInsight(ctx, req, aiwebhook.Insight{
		Type:  current.Type,
		Title: current.Title,
		Body:  current.Body,
	})
	if err != nil {
		p.logger.WarnWithError(ctx, "insight regeneration failed", err)
		return report.InsightView{}, err
	}
	if strings.TrimSpace(answer.Body) == "" && strings.TrimSpace(answer.Title) == "" {
		return report.InsightView{}, ErrEmptyAnswer
	}

	typ := string(domain.ParseInsightType(answer.Type))
	title := strings.TrimSpace(answer.Title)
	updated, err := p.store.UpdateInsight(ctx, insightID, store.UpdateInsightParams{
		Type:  &typ,
		Title: &title,
		Body:  &answer.Body,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save regenerated insight", err)
		return report.InsightView{}, err
	}
	return report.NewInsightView(updated), nil
}

type CreateParams struct {
	Page  string
	Type  string
	Title string
	Body  string
}

// Create stores an operator-written insight.
func (p *InsightsProcessor) Create(ctx context.Context, campaignID uuid.UUID, params CreateParams) (report.InsightView, error) {
	pg, err := domain.ParseInsightPage(params.Page)
	if err != nil {
		return report.InsightView{}, err
	}
	typ := domain.InsightType(strings.ToLower(strings.TrimSpace(params.Type)))
	if typ == "" {
		typ = domain.InsightInfo
	}
	if !domain.ValidInsightType(typ) {
		return report.InsightView{}, ErrInvalidType
	}
	if strings.TrimSpace(params.Title) == "" {
		return report.InsightView{}, ErrTitleRequired
	}
	if strings.TrimSpace(params.Body) == "" {
		return report.InsightView{}, ErrBodyRequired
	}

	in, err := p.store.CreateInsight(ctx, store.CreateInsightParams{
		CampaignID: campaignID,
		Page:       string(pg),
		Type:       string(typ),
		Title:      strings.TrimSpace(params.Title),
		Body:       params.Body,
		Source:     string(domain.InsightSourceManual),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create insight", err)
		return report.InsightView{}, err
	}
	return report.NewInsightView(in), nil
}

type EditParams struct {
	Type  *string
	Title *string
	Body  *string
}

// Edit applies a partial update.
func (p *InsightsProcessor) Edit(ctx context.Context, insightID uuid.UUID, params EditParams) (report.InsightView, error) {
	upd := store.UpdateInsightParams{Body: params.Body}
	if params.Type != nil {
		t := domain.InsightType(strings.ToLower(strings.TrimSpace(*params.Type)))
		if !domain.ValidInsightType(t) {
			return report.InsightView{}, ErrInvalidType
		}
		s := string(t)
		upd.Type = &s
	}
	if params.Title != nil {
		t := strings.TrimSpace(*params.Title)
		if t == "" {
			return report.InsightView{}, ErrTitleRequired
		}
		upd.Title = &t
	}
	if params.Body != nil && strings.TrimSpace(*params.Body) == "" {
		return report.InsightView{}, ErrBodyRequired
	}

	in, err := p.store.UpdateInsight(ctx, insightID, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return report.InsightView{}, ErrInsightNotFound
		}
		p.logger.Error(ctx, "failed to update insight", err)
		return report.InsightView{}, err
	}
	return report.NewInsightView(in), nil
}

// SoftDelete hides an insight from reports; Restore brings it back.
func (p *InsightsProcessor) SoftDelete(ctx context.Context, insightID uuid.UUID) error {
	return p.setActive(ctx, insightID, false)
}

func (p *InsightsProcessor) Restore(ctx context.Context, insightID uuid.UUID) error {
	return p.setActive(ctx, insightID, true)
}

func (p *InsightsProcessor) setActive(ctx context.Context, insightID uuid.UUID, active bool) error {
	if err := p.store.SetInsightActive(ctx, insightID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInsightNotFound
		}
		p.logger.Error(ctx, "failed to update insight state", err)
		return err
	}
	return nil
}

func (p *InsightsProcessor) HardDelete(ctx context.Context, insightID uuid.UUID) error {
	if err := p.store.DeleteInsight(ctx, insightID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInsightNotFound
		}
		p.logger.Error(ctx, "failed to delete insight", err)
		return err
	}
	return nil
}

func (p *InsightsProcessor) get(ctx context.Context, insightID uuid.UUID) (store.Insight, error) {
	in, err := p.store.GetInsightByID(ctx, insightID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Insight{}, ErrInsightNotFound
		}
		p.logger.Error(ctx, "failed to get insight", err)
		return store.Insight{}, err
	}
	return in, nil
}
