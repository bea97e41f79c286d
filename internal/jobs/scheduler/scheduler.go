package scheduler

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/observability"

	"github.com/go-co-op/gocron"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler runs registered jobs on their intervals. Every job runs once
// right after Start and never overlaps with itself.
type Scheduler struct {
	cron   *gocron.Scheduler
	jobs   []Job
	logger *observability.Logger
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	cron := gocron.NewScheduler(time.UTC)
	cron.TagsUnique()
	return &Scheduler{
		cron:   cron,
		jobs:   make([]Job, 0),
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start schedules every registered job and blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		_, err := s.cron.Every(job.Schedule()).Tag(job.Name()).SingletonMode().Do(s.executeJob, jobCtx, job)
		if err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}
	}
	s.cron.StartAsync()

	<-ctx.Done()
	s.cron.Stop()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
}
