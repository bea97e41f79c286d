package jobs

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/campaign/processor"
	"air-relatorios/internal/observability"
)

// DynamicRefresher re-fetches post counters for dynamic campaigns.
type DynamicRefresher interface {
	RefreshDynamicCampaigns(ctx context.Context) (processor.RefreshResult, error)
}

// DynamicRefreshJob keeps the metrics of dynamic campaigns in step with the
// profile API.
type DynamicRefreshJob struct {
	refresher DynamicRefresher
	logger    *observability.Logger
	interval  time.Duration
}

// NewDynamicRefreshJob creates a new dynamic refresh job
func NewDynamicRefreshJob(refresher DynamicRefresher, logger *observability.Logger, interval time.Duration) *DynamicRefreshJob {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &DynamicRefreshJob{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
	}
}

func (j *DynamicRefreshJob) Name() string {
	return "dynamic_campaign_refresh"
}

func (j *DynamicRefreshJob) Schedule() time.Duration {
	return j.interval
}

func (j *DynamicRefreshJob) Run(ctx context.Context) error {
	res, err := j.refresher.RefreshDynamicCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh dynamic campaigns: %w", err)
	}
	j.logger.Info(ctx, fmt.Sprintf("Dynamic refresh completed: %d campaigns, %d posts updated, %d not found, %d failed",
		res.Campaigns, res.Updated, res.Missing, res.Failed))
	return nil
}
