package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"air-relatorios/internal/clients/profiles"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	// Campaigns
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, filter store.CampaignFilter) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	GetClientByID(ctx context.Context, id uuid.UUID) (store.Client, error)

	// Attached influencers
	GetInfluencerByID(ctx context.Context, id uuid.UUID) (store.Influencer, error)
	GetCategoryByName(ctx context.Context, name string) (store.Category, error)
	AttachInfluencer(ctx context.Context, params store.AttachInfluencerParams) (store.CampaignInfluencer, error)
	GetCampaignInfluencer(ctx context.Context, id uuid.UUID) (store.CampaignInfluencer, error)
	ListCampaignInfluencers(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignInfluencerDetail, error)
	UpdateCampaignInfluencer(ctx context.Context, id uuid.UUID, params store.UpdateCampaignInfluencerParams) (store.CampaignInfluencer, error)
	DetachInfluencer(ctx context.Context, edgeID uuid.UUID) error

	// Posts
	CreatePost(ctx context.Context, params store.CreatePostParams) (store.Post, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (store.Post, error)
	GetPostByShortcode(ctx context.Context, campaignID uuid.UUID, shortcode string) (store.Post, error)
	ListPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Post, error)
	ListPostsByCampaignInfluencer(ctx context.Context, edgeID uuid.UUID) ([]store.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, params store.UpdatePostParams) (store.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// PostSource reads posts and their counters from the profile API.
type PostSource interface {
	FindPostByLink(ctx context.Context, profileID, link string, budgetDays int) (*profiles.PostItem, error)
	SearchPosts(ctx context.Context, f profiles.PostFilter) (profiles.PostsPage, error)
}

var (
	ErrCampaignNotFound       = fmt.Errorf("campaign not found: %w", domain.ErrNotFound)
	ErrClientNotFound         = fmt.Errorf("client not found: %w", domain.ErrNotFound)
	ErrInfluencerNotFound     = fmt.Errorf("influencer not found: %w", domain.ErrNotFound)
	ErrEdgeNotFound           = fmt.Errorf("influencer is not attached to this campaign: %w", domain.ErrNotFound)
	ErrPostNotFound           = fmt.Errorf("post not found: %w", domain.ErrNotFound)
	ErrPostNotFoundByLink     = fmt.Errorf("no post matching the link was found in the lookup window: %w", domain.ErrNotFound)
	ErrAlreadyAttached        = store.ErrAlreadyAttached
	ErrPostAlreadyAdded       = fmt.Errorf("post already added to this campaign: %w", domain.ErrConflict)
	ErrNameRequired           = fmt.Errorf("name is required: %w", domain.ErrBadInput)
	ErrInvalidDateRange       = fmt.Errorf("end date is before start date: %w", domain.ErrBadInput)
	ErrTooManyCustomColumns   = fmt.Errorf("at most %d custom columns are allowed: %w", domain.MaxCustomColumns, domain.ErrBadInput)
	ErrTooManyClassifications = fmt.Errorf("at most %d specific classifications are allowed: %w", domain.MaxSpecificClassifications, domain.ErrBadInput)
	ErrTooManyCategories      = fmt.Errorf("at most %d comment categories are allowed: %w", domain.MaxCommentCategories, domain.ErrBadInput)
	ErrDuplicateName          = fmt.Errorf("names must be unique: %w", domain.ErrBadInput)
	ErrReservedCategory       = fmt.Errorf("%q is reserved: %w", domain.Unclassified, domain.ErrBadInput)
	ErrNegativeValue          = fmt.Errorf("numbers cannot be negative: %w", domain.ErrBadInput)
	ErrUnknownCategory        = fmt.Errorf("category is not in the catalogue: %w", domain.ErrBadInput)
	ErrUnknownSpecificValue   = fmt.Errorf("value is not one of the classification values: %w", domain.ErrBadInput)
	ErrTooManySpecificValues  = fmt.Errorf("more values than the campaign has classifications: %w", domain.ErrBadInput)
	ErrInvalidScreensCount    = fmt.Errorf("stories need at least one screen: %w", domain.ErrBadInput)
	ErrTooManyTopContents     = fmt.Errorf("at most %d top contents are allowed: %w", domain.MaxTopContents, domain.ErrBadInput)
	ErrInvalidSlot            = fmt.Errorf("top content slots go from 1 to %d and cannot repeat: %w", domain.MaxTopContents, domain.ErrBadInput)
	ErrPostNotInCampaign      = fmt.Errorf("post does not belong to this campaign: %w", domain.ErrBadInput)
	ErrProfileMissing         = profiles.ErrProfileMissing
)

type CampaignProcessor struct {
	store  CampaignStore
	posts  PostSource
	logger *observability.Logger
	now    func() time.Time
}

func New(store CampaignStore, posts PostSource, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		posts:  posts,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name                    string
	ClientID                uuid.UUID
	Objective               string
	StartDate               *time.Time
	EndDate                 *time.Time
	DataMode                string
	IsAON                   bool
	MetricFlags             []string
	ReachEstimate           int64
	ImpressionsEstimate     int64
	TotalInvestment         float64
	Notes                   string
	CustomColumns           []string
	InsightConfig           map[string]any
	ShowCategoryTab         bool
	SpecificClassifications []domain.SpecificClassification
	CommentCategories       []domain.CommentCategory
}

// UpdateCampaignParams is a partial update; nil fields keep their value.
type UpdateCampaignParams struct {
	Name                    *string
	ClientID                *uuid.UUID
	Objective               *string
	StartDate               *time.Time
	EndDate                 *time.Time
	DataMode                *string
	IsAON                   *bool
	MetricFlags             *[]string
	ReachEstimate           *int64
	ImpressionsEstimate     *int64
	TotalInvestment         *float64
	Notes                   *string
	CustomColumns           *[]string
	InsightConfig           *map[string]any
	ShowCategoryTab         *bool
	SpecificClassifications *[]domain.SpecificClassification
	CommentCategories       *[]domain.CommentCategory
}

// CreateCampaign validates and stores a new campaign. Metric flags default
// to every collectable metric.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return store.Campaign{}, ErrNameRequired
	}
	if err := p.requireClient(ctx, params.ClientID); err != nil {
		return store.Campaign{}, err
	}
	if err := checkDates(params.StartDate, params.EndDate); err != nil {
		return store.Campaign{}, err
	}
	mode, err := domain.ParseDataMode(params.DataMode)
	if err != nil {
		return store.Campaign{}, err
	}
	if params.ReachEstimate < 0 || params.ImpressionsEstimate < 0 || params.TotalInvestment < 0 {
		return store.Campaign{}, ErrNegativeValue
	}
	flags, err := metricFlags(params.MetricFlags)
	if err != nil {
		return store.Campaign{}, err
	}
	columns, err := customColumns(params.CustomColumns)
	if err != nil {
		return store.Campaign{}, err
	}
	classifications, err := specificClassifications(params.SpecificClassifications)
	if err != nil {
		return store.Campaign{}, err
	}
	categories, err := commentCategories(params.CommentCategories)
	if err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:                    name,
		ClientID:                params.ClientID,
		Objective:               strings.TrimSpace(params.Objective),
		StartDate:               params.StartDate,
		EndDate:                 params.EndDate,
		DataMode:                string(mode),
		IsAON:                   params.IsAON,
		MetricFlags:             flags,
		ReachEstimate:           params.ReachEstimate,
		ImpressionsEstimate:     params.ImpressionsEstimate,
		TotalInvestment:         params.TotalInvestment,
		Notes:                   params.Notes,
		CustomColumns:           columns,
		InsightConfig:           params.InsightConfig,
		ShowCategoryTab:         params.ShowCategoryTab,
		SpecificClassifications: classifications,
		CommentCategories:       categories,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()}),
		"campaign created")
	return campaign, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, id uuid.UUID) (store.Campaign, error) {
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

// ListCampaigns lists campaigns, newest first, optionally for one client.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, clientID *uuid.UUID) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaigns(ctx, store.CampaignFilter{ClientID: clientID})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// UpdateCampaign merges params into the stored campaign. The date range is
// checked against the merged result.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})

	current, err := p.GetCampaign(ctx, id)
	if err != nil {
		return store.Campaign{}, err
	}

	update := store.UpdateCampaignParams{
		Objective:           params.Objective,
		StartDate:           params.StartDate,
		EndDate:             params.EndDate,
		IsAON:               params.IsAON,
		ReachEstimate:       params.ReachEstimate,
		ImpressionsEstimate: params.ImpressionsEstimate,
		TotalInvestment:     params.TotalInvestment,
		Notes:               params.Notes,
		InsightConfig:       params.InsightConfig,
		ShowCategoryTab:     params.ShowCategoryTab,
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return store.Campaign{}, ErrNameRequired
		}
		update.Name = &name
	}
	if params.ClientID != nil && *params.ClientID != current.ClientID {
		if err := p.requireClient(ctx, *params.ClientID); err != nil {
			return store.Campaign{}, err
		}
		update.ClientID = params.ClientID
	}

	start, end := current.StartDate, current.EndDate
	if params.StartDate != nil {
		start = params.StartDate
	}
	if params.EndDate != nil {
		end = params.EndDate
	}
	if err := checkDates(start, end); err != nil {
		return store.Campaign{}, err
	}

	if params.DataMode != nil {
		mode, err := domain.ParseDataMode(*params.DataMode)
		if err != nil {
			return store.Campaign{}, err
		}
		m := string(mode)
		update.DataMode = &m
	}
	for _, v := range []*int64{params.ReachEstimate, params.ImpressionsEstimate} {
		if v != nil && *v < 0 {
			return store.Campaign{}, ErrNegativeValue
		}
	}
	if params.TotalInvestment != nil && *params.TotalInvestment < 0 {
		return store.Campaign{}, ErrNegativeValue
	}
	if params.MetricFlags != nil {
		flags, err := metricFlags(*params.MetricFlags)
		if err != nil {
			return store.Campaign{}, err
		}
		update.MetricFlags = &flags
	}
	if params.CustomColumns != nil {
		columns, err := customColumns(*params.CustomColumns)
		if err != nil {
			return store.Campaign{}, err
		}
		update.CustomColumns = &columns
	}
	if params.SpecificClassifications != nil {
		classifications, err := specificClassifications(*params.SpecificClassifications)
		if err != nil {
			return store.Campaign{}, err
		}
		update.SpecificClassifications = &classifications
	}
	if params.CommentCategories != nil {
		categories, err := commentCategories(*params.CommentCategories)
		if err != nil {
			return store.Campaign{}, err
		}
		update.CommentCategories = &categories
	}

	campaign, err := p.store.UpdateCampaign(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign removes the campaign and everything scoped to it.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})
	if err := p.store.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}
	p.logger.Info(ctx, "campaign deleted")
	return nil
}

// SetCommentCategories replaces the categories comments are classified into.
// Comments already stored keep the category they were given.
func (p *CampaignProcessor) SetCommentCategories(ctx context.Context, id uuid.UUID, categories []domain.CommentCategory) (store.Campaign, error) {
	return p.UpdateCampaign(ctx, id, UpdateCampaignParams{CommentCategories: &categories})
}

// TopPick selects a post for a curated Top-3 slot.
type TopPick struct {
	Slot        int
	PostID      uuid.UUID
	Description string
}

// SetTopContents replaces the curated podium. Each pick is frozen with a
// snapshot of the post as it is now; an empty list returns the podium to
// automatic ranking.
func (p *CampaignProcessor) SetTopContents(ctx context.Context, id uuid.UUID, picks []TopPick) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})

	if len(picks) > domain.MaxTopContents {
		return store.Campaign{}, ErrTooManyTopContents
	}
	seen := make(map[int]bool, len(picks))
	for _, pick := range picks {
		if pick.Slot < 1 || pick.Slot > domain.MaxTopContents || seen[pick.Slot] {
			return store.Campaign{}, ErrInvalidSlot
		}
		seen[pick.Slot] = true
	}

	campaign, err := p.GetCampaign(ctx, id)
	if err != nil {
		return store.Campaign{}, err
	}

	rows := make(map[uuid.UUID]metrics.PostRow)
	if len(picks) > 0 {
		proj, err := p.project(ctx, campaign)
		if err != nil {
			return store.Campaign{}, err
		}
		for _, r := range metrics.Posts(proj) {
			rows[r.Post.ID] = r
		}
	}

	selectedAt := p.now()
	top := make([]domain.TopContent, 0, len(picks))
	for _, pick := range picks {
		row, ok := rows[pick.PostID]
		if !ok {
			return store.Campaign{}, ErrPostNotInCampaign
		}
		top = append(top, domain.TopContent{
			Slot:        pick.Slot,
			PostID:      pick.PostID.String(),
			Description: strings.TrimSpace(pick.Description),
			Snapshot:    report.Snapshot(row),
			SelectedAt:  selectedAt,
		})
	}
	slices.SortFunc(top, func(a, b domain.TopContent) int { return a.Slot - b.Slot })

	updated, err := p.store.UpdateCampaign(ctx, id, store.UpdateCampaignParams{TopContents: &top})
	if err != nil {
		p.logger.Error(ctx, "failed to set top contents", err)
		return store.Campaign{}, err
	}
	return updated, nil
}

// project loads the campaign graph into the metrics projection.
func (p *CampaignProcessor) project(ctx context.Context, campaign store.Campaign) (metrics.Campaign, error) {
	edges, err := p.store.ListCampaignInfluencers(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign influencers", err)
		return metrics.Campaign{}, err
	}
	posts, err := p.store.ListPostsByCampaign(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list posts", err)
		return metrics.Campaign{}, err
	}
	return report.Project(campaign, edges, posts), nil
}

func (p *CampaignProcessor) requireClient(ctx context.Context, id uuid.UUID) error {
	if _, err := p.store.GetClientByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to get client", err)
		return err
	}
	return nil
}

func checkDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDateRange
	}
	return nil
}

func metricFlags(in []string) ([]string, error) {
	if len(in) == 0 {
		out := make([]string, len(domain.Metrics))
		for i, m := range domain.Metrics {
			out[i] = string(m)
		}
		return out, nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		m, err := domain.ParseMetric(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, string(m)) {
			out = append(out, string(m))
		}
	}
	return out, nil
}

func customColumns(in []string) ([]string, error) {
	if len(in) > domain.MaxCustomColumns {
		return nil, ErrTooManyCustomColumns
	}
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, ErrNameRequired
		}
		out = append(out, c)
	}
	return out, nil
}

func specificClassifications(in []domain.SpecificClassification) ([]domain.SpecificClassification, error) {
	if len(in) > domain.MaxSpecificClassifications {
		return nil, ErrTooManyClassifications
	}
	names := make([]string, 0, len(in))
	out := make([]domain.SpecificClassification, 0, len(in))
	for _, sc := range in {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		names = append(names, name)
		values := make([]string, 0, len(sc.Values))
		for _, v := range sc.Values {
			if v = strings.TrimSpace(v); v != "" && !slices.Contains(values, v) {
				values = append(values, v)
			}
		}
		out = append(out, domain.SpecificClassification{Name: name, Values: values})
	}
	if hasDuplicates(names) {
		return nil, ErrDuplicateName
	}
	return out, nil
}

func commentCategories(in []domain.CommentCategory) ([]domain.CommentCategory, error) {
	if len(in) > domain.MaxCommentCategories {
		return nil, ErrTooManyCategories
	}
	names := make([]string, 0, len(in))
	out := make([]domain.CommentCategory, 0, len(in))
	for _, cc := range in {
		name := strings.TrimSpace(cc.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		if strings.EqualFold(name, domain.Unclassified) {
			return nil, ErrReservedCategory
		}
		names = append(names, name)
		out = append(out, domain.CommentCategory{Name: name, Description: strings.TrimSpace(cc.Description)})
	}
	if hasDuplicates(names) {
		return nil, ErrDuplicateName
	}
	return out, nil
}

// hasDuplicates compares names case-insensitively.
func hasDuplicates(names []string) bool {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		k := strings.ToLower(n)
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}
