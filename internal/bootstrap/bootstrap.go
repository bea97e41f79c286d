package bootstrap

import (
	"context"
	"fmt"
	"os"

	"air-relatorios/internal/config"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/ratelimit"
	"air-relatorios/internal/store"

	authHandler "air-relatorios/internal/auth/handler"
	authProcessor "air-relatorios/internal/auth/processor"
	campaignHandler "air-relatorios/internal/campaign/handler"
	campaignProcessor "air-relatorios/internal/campaign/processor"
	"air-relatorios/internal/clients/aiwebhook"
	"air-relatorios/internal/clients/googleai"
	"air-relatorios/internal/clients/mail"
	"air-relatorios/internal/clients/openai"
	"air-relatorios/internal/clients/profiles"
	"air-relatorios/internal/clients/redis"
	commentsHandler "air-relatorios/internal/comments/handler"
	commentsProcessor "air-relatorios/internal/comments/processor"
	customersHandler "air-relatorios/internal/customers/handler"
	customersProcessor "air-relatorios/internal/customers/processor"
	exportsHandler "air-relatorios/internal/exports/handler"
	exportsProcessor "air-relatorios/internal/exports/processor"
	influencersHandler "air-relatorios/internal/influencers/handler"
	influencersProcessor "air-relatorios/internal/influencers/processor"
	insightsHandler "air-relatorios/internal/insights/handler"
	insightsProcessor "air-relatorios/internal/insights/processor"
	"air-relatorios/internal/jobs/scheduler"
	"air-relatorios/internal/jobs/scheduler/jobs"
	reportHandler "air-relatorios/internal/report/handler"
	reportProcessor "air-relatorios/internal/report/processor"
	shareHandler "air-relatorios/internal/share/handler"
	shareProcessor "air-relatorios/internal/share/processor"
)

// AIClient is what comment classification and insight generation need from
// the configured AI transport.
type AIClient interface {
	commentsProcessor.Classifier
	insightsProcessor.Generator
}

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Redis  *redis.Client

	// Processors used outside HTTP
	AuthProcessor        authProcessor.AuthProcessor
	CampaignProcessor    campaignProcessor.CampaignProcessor
	InfluencersProcessor influencersProcessor.InfluencersProcessor

	// Handlers
	AuthHandler        authHandler.Handler
	CustomersHandler   customersHandler.Handler
	InfluencersHandler influencersHandler.Handler
	CampaignHandler    campaignHandler.Handler
	ReportHandler      reportHandler.Handler
	InsightsHandler    insightsHandler.Handler
	CommentsHandler    commentsHandler.Handler
	ShareHandler       shareHandler.Handler
	ExportsHandler     exportsHandler.Handler

	RateLimiter *ratelimit.Service

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// OpenStore connects to the configured database and applies pending
// migrations.
func OpenStore(ctx context.Context, cfg *config.Config, logger *observability.Logger) (store.Store, error) {
	s, err := store.Open(cfg.Database.DSN(), logger)
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	applied, err := s.Migrate(ctx)
	if err != nil {
		s.Close()
		return store.Store{}, fmt.Errorf("failed to migrate database: %w", err)
	}
	if applied > 0 {
		logger.Info(ctx, fmt.Sprintf("Applied %d migrations", applied))
	}
	return s, nil
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	db := &deps.Store

	// Initialize clients
	aiClient, err := NewAIClient(cfg.AI, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	profileClient := profiles.NewClient(profiles.Config{
		BaseURL:    cfg.Profiles.BaseURL,
		APIKey:     cfg.Profiles.APIKey,
		BudgetDays: cfg.Profiles.LookupBudgetDays,
		WindowDays: cfg.Profiles.LookupWindowDays,
	}, logger)

	var emailService authProcessor.EmailService
	if cfg.Services.ResendAPIKey != "" {
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		emailService = mailClient
	} else {
		logger.Info(ctx, "RESEND_API_KEY not set, invite links will not be mailed")
	}

	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		// Rate limiting falls back to the in-process limiter.
		logger.WarnWithError(ctx, "failed to connect to redis", err)
		deps.Redis = nil
	}
	deps.RateLimiter = ratelimit.NewService(deps.Redis, logger)

	// Initialize auth processor and handler
	deps.AuthProcessor = authProcessor.New(db, authProcessor.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		WebAppURI: cfg.Services.WebAppURI,
	}, emailService, logger)
	deps.AuthHandler = authHandler.New(deps.AuthProcessor, logger)

	// Initialize registry processors and handlers
	customersProc := customersProcessor.New(db, logger)
	deps.CustomersHandler = customersHandler.New(customersProc, logger)

	deps.InfluencersProcessor = influencersProcessor.New(db, profileClient, logger)
	deps.InfluencersHandler = influencersHandler.New(deps.InfluencersProcessor, logger)

	deps.CampaignProcessor = campaignProcessor.New(db, profileClient, logger)
	deps.CampaignHandler = campaignHandler.New(deps.CampaignProcessor, logger)

	// Initialize report consumers
	reportProc := reportProcessor.New(db, logger)
	deps.ReportHandler = reportHandler.New(reportProc, logger)

	insightsProc := insightsProcessor.New(db, &reportProc, aiClient, logger)
	deps.InsightsHandler = insightsHandler.New(insightsProc, AllowedOrigins(cfg), logger)

	commentsProc := commentsProcessor.New(db, aiClient, logger)
	deps.CommentsHandler = commentsHandler.New(commentsProc, logger)

	shareProc := shareProcessor.New(db, &reportProc, cfg.Services.WebAppURI, logger)
	deps.ShareHandler = shareHandler.New(shareProc, logger)

	exportsProc := exportsProcessor.New(&reportProc, logger)
	deps.ExportsHandler = exportsHandler.New(exportsProc, logger)

	// Initialize scheduled jobs
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewDynamicRefreshJob(&deps.CampaignProcessor, logger, cfg.Jobs.DynamicRefreshInterval))
	deps.Scheduler.Register(jobs.NewInvitePurgeJob(db, logger, 0))

	return deps, nil
}

// NewAIClient picks the AI transport named by cfg.Provider.
func NewAIClient(cfg config.AIConfig, logger *observability.Logger) (AIClient, error) {
	switch cfg.Provider {
	case "openai":
		chat, err := openai.NewChatClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return aiwebhook.NewModelClient("openai", chat, cfg.Timeout, cfg.CommentsTimeout), nil
	case "gemini":
		gemini, err := googleai.NewGeminiClient(cfg.GoogleAIAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return aiwebhook.NewModelClient("gemini", gemini, cfg.Timeout, cfg.CommentsTimeout), nil
	default:
		return aiwebhook.NewClient(cfg.WebhookURL, cfg.Timeout, cfg.CommentsTimeout, logger), nil
	}
}

// AllowedOrigins lists the browser origins allowed to call the API.
func AllowedOrigins(cfg *config.Config) []string {
	if os.Getenv("GO_ENV") != "production" {
		return []string{cfg.Services.WebAppURI, "http://localhost:3000", "http://localhost:5173"}
	}
	return []string{cfg.Services.WebAppURI}
}

// SeedAdmin creates the bootstrap administrator when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set and the account does not exist yet.
func (d *Dependencies) SeedAdmin(ctx context.Context, cfg *config.Config) error {
	if cfg.Auth.SeedAdminEmail == "" || cfg.Auth.SeedAdminPassword == "" {
		return nil
	}
	created, err := d.AuthProcessor.SeedAdmin(ctx, cfg.Auth.SeedAdminEmail, cfg.Auth.SeedAdminPassword, cfg.Auth.SeedAdminName)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if created {
		d.Logger.Info(ctx, "Seeded administrator account",
			observability.Field{Key: "email", Value: cfg.Auth.SeedAdminEmail})
	}
	return nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WarnWithError(context.Background(), "failed to close redis", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(context.Background(), "failed to close database", err)
	}
}
