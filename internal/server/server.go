package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "air-relatorios/internal/api"
	"air-relatorios/internal/bootstrap"
	"air-relatorios/internal/config"
	"air-relatorios/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	stopJobs context.CancelFunc
	jobsDone chan struct{}
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "Cache-Control"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "Retry-After", "X-RateLimit-Remaining"}
	corsConfig.AllowOrigins = bootstrap.AllowedOrigins(s.config)

	s.router.Use(gin.Recovery())
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	rootRouter := s.router.Group("/")
	api := apisetup.New(
		rootRouter,
		apisetup.Handlers{
			Auth:        s.deps.AuthHandler,
			Customers:   s.deps.CustomersHandler,
			Influencers: s.deps.InfluencersHandler,
			Campaign:    s.deps.CampaignHandler,
			Report:      s.deps.ReportHandler,
			Insights:    s.deps.InsightsHandler,
			Comments:    s.deps.CommentsHandler,
			Share:       s.deps.ShareHandler,
			Exports:     s.deps.ExportsHandler,
		},
		s.deps.RateLimiter,
		s.config.Server.PublicRateLimitRPM,
	)
	api.RegisterRoutes()
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests and starts the job scheduler
// unless withJobs is false.
func (s *Server) Start(ctx context.Context, withJobs bool) error {
	if withJobs {
		jobsCtx, cancel := context.WithCancel(ctx)
		s.stopJobs = cancel
		s.jobsDone = make(chan struct{})
		go func() {
			defer close(s.jobsDone)
			if err := s.deps.Scheduler.Start(jobsCtx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error(ctx, "scheduler stopped with error", err)
			}
		}()
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	if s.stopJobs != nil {
		s.stopJobs()
		<-s.jobsDone
	}

	// Insight generation can run for minutes; in-flight requests get a
	// bounded grace period.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
