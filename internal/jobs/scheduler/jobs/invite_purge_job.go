package jobs

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/observability"
)

// InviteRetention is how long an unused invite is kept after it expires.
const InviteRetention = 7 * 24 * time.Hour

type InvitePurger interface {
	PurgeExpiredInvites(ctx context.Context, cutoff time.Time) (int, error)
}

// InvitePurgeJob hard-deletes unused invites expired for longer than
// InviteRetention.
type InvitePurgeJob struct {
	store    InvitePurger
	logger   *observability.Logger
	interval time.Duration
	now      func() time.Time
}

// NewInvitePurgeJob creates a new invite purge job
func NewInvitePurgeJob(store InvitePurger, logger *observability.Logger, interval time.Duration) *InvitePurgeJob {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &InvitePurgeJob{
		store:    store,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

func (j *InvitePurgeJob) Name() string {
	return "invite_purge"
}

func (j *InvitePurgeJob) Schedule() time.Duration {
	return j.interval
}

func (j *InvitePurgeJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-InviteRetention)
	n, err := j.store.PurgeExpiredInvites(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge invites: %w", err)
	}
	if n > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Purged %d expired invites", n))
	}
	return nil
}
