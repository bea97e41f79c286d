package store

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

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

// UpdateCampaignParams is a partial update; nil fields are left untouched.
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
	TopContents             *[]domain.TopContent
	CustomColumns           *[]string
	InsightConfig           *map[string]any
	ShowCategoryTab         *bool
	SpecificClassifications *[]domain.SpecificClassification
	CommentCategories       *[]domain.CommentCategory
}

type CampaignFilter struct {
	ClientID *uuid.UUID
	DataMode string
}

const campaignColumns = `id, name, client_id, objective, start_date, end_date, data_mode, is_aon, metric_flags,
    reach_estimate, impressions_estimate, total_investment, notes, top_contents, custom_columns,
    insight_config, show_category_tab, specific_classifications, comment_categories, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (id, name, client_id, objective, start_date, end_date, data_mode, is_aon, metric_flags,
    reach_estimate, impressions_estimate, total_investment, notes, top_contents, custom_columns,
    insight_config, show_category_tab, specific_classifications, comment_categories, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	id := uuid.New()
	ts := now()
	_, err := s.exec(ctx, s.db, sqlCreateCampaign,
		id, params.Name, params.ClientID, params.Objective, params.StartDate, params.EndDate,
		params.DataMode, params.IsAON, NewJSON(orEmpty(params.MetricFlags)),
		params.ReachEstimate, params.ImpressionsEstimate, params.TotalInvestment, params.Notes,
		NewJSON([]domain.TopContent{}), NewJSON(orEmpty(params.CustomColumns)),
		NewJSON(orEmptyMap(params.InsightConfig)), params.ShowCategoryTab,
		NewJSON(orEmpty(params.SpecificClassifications)), NewJSON(orEmpty(params.CommentCategories)),
		ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return s.GetCampaignByID(ctx, id)
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = ?`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID) (Campaign, error) {
	var c Campaign
	if err := s.get(ctx, s.reader(ctx), &c, sqlGetCampaignByID, id); err != nil {
		return Campaign{}, s.notFound(ctx, err, "get campaign by id")
	}
	return c, nil
}

func (s *Store) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	var args []any
	if filter.ClientID != nil {
		query += ` AND client_id = ?`
		args = append(args, *filter.ClientID)
	}
	if filter.DataMode != "" {
		query += ` AND data_mode = ?`
		args = append(args, filter.DataMode)
	}
	query += ` ORDER BY created_at DESC`

	out := []Campaign{}
	if err := s.sel(ctx, s.db, &out, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return out, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns SET
    name = COALESCE(?, name),
    client_id = COALESCE(?, client_id),
    objective = COALESCE(?, objective),
    start_date = COALESCE(?, start_date),
    end_date = COALESCE(?, end_date),
    data_mode = COALESCE(?, data_mode),
    is_aon = COALESCE(?, is_aon),
    metric_flags = COALESCE(?, metric_flags),
    reach_estimate = COALESCE(?, reach_estimate),
    impressions_estimate = COALESCE(?, impressions_estimate),
    total_investment = COALESCE(?, total_investment),
    notes = COALESCE(?, notes),
    top_contents = COALESCE(?, top_contents),
    custom_columns = COALESCE(?, custom_columns),
    insight_config = COALESCE(?, insight_config),
    show_category_tab = COALESCE(?, show_category_tab),
    specific_classifications = COALESCE(?, specific_classifications),
    comment_categories = COALESCE(?, comment_categories),
    updated_at = ?
WHERE id = ?`

// UpdateCampaign merges the non-nil fields into the stored campaign.
func (s *Store) UpdateCampaign(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateCampaign,
		params.Name, params.ClientID, params.Objective, params.StartDate, params.EndDate,
		params.DataMode, params.IsAON, jsonArg(params.MetricFlags),
		params.ReachEstimate, params.ImpressionsEstimate, params.TotalInvestment, params.Notes,
		jsonArg(params.TopContents), jsonArg(params.CustomColumns), jsonArg(params.InsightConfig),
		params.ShowCategoryTab, jsonArg(params.SpecificClassifications), jsonArg(params.CommentCategories),
		now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Campaign{}, err
	}
	return s.GetCampaignByID(ctx, id)
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = ?`

// DeleteCampaign removes the campaign; edges, posts, comments, insights and
// share tokens go with it through ON DELETE CASCADE.
func (s *Store) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteCampaign, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountCampaigns = `SELECT COUNT(*) FROM campaigns`

func (s *Store) CountCampaigns(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountCampaigns); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return n, nil
}

// jsonArg turns an optional value into a JSON column argument or SQL NULL.
func jsonArg[T any](p *T) any {
	if p == nil {
		return nil
	}
	return NewJSON(*p)
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
