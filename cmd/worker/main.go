package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"air-relatorios/internal/bootstrap"
	"air-relatorios/internal/config"
	"air-relatorios/internal/observability"
)

// The worker runs the scheduled jobs on their own, for deployments that
// start the API with `serve --no-jobs`.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLoggerWithConfig(observability.LogConfig{
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting background worker...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	if err := deps.Scheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "scheduler stopped with error", err)
	}
	logger.Info(ctx, "Worker stopped")
}
