package main

import (
	"context"
	"fmt"
	"os"

	"air-relatorios/internal/bootstrap"
	"air-relatorios/internal/config"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/server"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfg    *config.Config
	logger *observability.Logger
	noJobs bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "air-relatorios",
	Short:        "Influencer campaign reports",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = observability.NewLoggerWithConfig(observability.LogConfig{
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&noJobs, "no-jobs", false, "Do not run scheduled jobs in this process")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(recomputeTiersCmd)
	rootCmd.AddCommand(refreshCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		deps, err := bootstrap.Initialize(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if err := deps.SeedAdmin(ctx, cfg); err != nil {
			logger.Error(ctx, "failed to seed admin", err)
		}

		srv := server.New(cfg, deps, logger)
		srv.Setup()
		if err := srv.Start(ctx, !noJobs); err != nil {
			return err
		}
		return srv.WaitForShutdown(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap.OpenStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer s.Close()
		fmt.Println("Database is up to date")
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the administrator named by SEED_ADMIN_EMAIL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.SeedAdminEmail == "" || cfg.Auth.SeedAdminPassword == "" {
			return fmt.Errorf("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
		}
		return withDeps(cmd.Context(), func(ctx context.Context, deps *bootstrap.Dependencies) error {
			return deps.SeedAdmin(ctx, cfg)
		})
	},
}

var recomputeTiersCmd = &cobra.Command{
	Use:   "recompute-tiers",
	Short: "Recompute the follower tier of every influencer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(ctx context.Context, deps *bootstrap.Dependencies) error {
			n, err := deps.InfluencersProcessor.RecomputeAllTiers(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %d influencers\n", n)
			return nil
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh post metrics of every dynamic campaign once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(ctx context.Context, deps *bootstrap.Dependencies) error {
			res, err := deps.CampaignProcessor.RefreshDynamicCampaigns(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Campaigns: %d\nChecked: %d\nUpdated: %d\nMissing: %d\nFailed: %d\n",
				res.Campaigns, res.Checked, res.Updated, res.Missing, res.Failed)
			return nil
		})
	},
}

func withDeps(ctx context.Context, fn func(context.Context, *bootstrap.Dependencies) error) error {
	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Cleanup()
	return fn(ctx, deps)
}
