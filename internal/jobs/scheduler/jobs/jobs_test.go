package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"air-relatorios/internal/campaign/processor"
	"air-relatorios/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	res   processor.RefreshResult
	err   error
	calls int
}

func (f *fakeRefresher) RefreshDynamicCampaigns(context.Context) (processor.RefreshResult, error) {
	f.calls++
	return f.res, f.err
}

type fakePurger struct {
	cutoff time.Time
	n      int
}

func (f *fakePurger) PurgeExpiredInvites(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	return f.n, nil
}

func TestDynamicRefreshJob(t *testing.T) {
	t.Parallel()
	logger := observability.NewNopLogger()

	ok := &fakeRefresher{res: processor.RefreshResult{Campaigns: 2, Updated: 5}}
	job := NewDynamicRefreshJob(ok, logger, 0)
	assert.Equal(t, 6*time.Hour, job.Schedule())
	assert.Equal(t, "dynamic_campaign_refresh", job.Name())
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, ok.calls)

	boom := errors.New("boom")
	failing := NewDynamicRefreshJob(&fakeRefresher{err: boom}, logger, time.Minute)
	assert.ErrorIs(t, failing.Run(context.Background()), boom)
}

func TestInvitePurgeJob_CutoffIsSevenDaysBack(t *testing.T) {
	t.Parallel()
	purger := &fakePurger{n: 3}
	job := NewInvitePurgeJob(purger, observability.NewNopLogger(), 0)
	job.now = func() time.Time { return time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC) }

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, time.Date(2025, 7, 3, 8, 0, 0, 0, time.UTC), purger.cutoff)
	assert.Equal(t, 24*time.Hour, job.Schedule())
}
