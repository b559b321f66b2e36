package server

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/maasproduction/studio-api/internal/api/handlers"
	"github.com/maasproduction/studio-api/internal/api/middleware"
	"github.com/maasproduction/studio-api/internal/config"
	"github.com/maasproduction/studio-api/internal/logging"
	"github.com/maasproduction/studio-api/internal/observability"
	"github.com/maasproduction/studio-api/internal/ratelimit"
	"github.com/maasproduction/studio-api/internal/sanity"
	"github.com/maasproduction/studio-api/internal/server/routes"
	"github.com/maasproduction/studio-api/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router          *gin.Engine
	cfg             *config.Config
	shutdownTracing func(context.Context) error
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, collaborators and routes. The context bounds
// the lifetime of background work such as the rate-limit janitor.
func (s *Server) Init(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	// Global middleware
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	if s.cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracing(ctx, s.cfg.OTLPEndpoint, "studio-api")
		if err != nil {
			return err
		}
		s.shutdownTracing = shutdown
		s.router.Use(otelgin.Middleware("studio-api"))
		logger.Info("Tracing enabled, exporting to %s", s.cfg.OTLPEndpoint)
	}

	// Content store clients: the read side goes through the CDN, the
	// write side never does.
	readStore := sanity.NewClient(sanity.Config{
		ProjectID:  s.cfg.SanityProjectID,
		Dataset:    s.cfg.SanityDataset,
		APIVersion: s.cfg.SanityAPIVersion,
		UseCDN:     true,
	})
	writeStore := sanity.NewClient(sanity.Config{
		ProjectID:  s.cfg.SanityProjectID,
		Dataset:    s.cfg.SanityDataset,
		APIVersion: s.cfg.SanityAPIVersion,
		Token:      s.cfg.SanityWriteToken,
	})

	if !s.cfg.CanWriteToSanity() {
		logger.Warn("Content store write client not configured; leads will not be persisted")
	}
	if !s.cfg.CanSendEmail() {
		logger.Warn("Email notification transport not configured; submissions will fail at the notification step")
	}

	// Submission gate: per-process fixed window by default, shared
	// Redis counter when configured.
	var submissionLimiter ratelimit.Limiter
	if s.cfg.RedisAddr != "" {
		submissionLimiter = ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword)
		logger.Info("Using shared rate-limit store at %s", s.cfg.RedisAddr)
	} else {
		memLimiter := ratelimit.NewMemoryLimiter()
		memLimiter.StartJanitor(ctx)
		submissionLimiter = memLimiter
	}

	// Services
	leadService := service.NewLeadService(writeStore)
	mailService := service.NewMailService(
		service.NewResendMailer(s.cfg.ResendAPIKey),
		s.cfg.InquiryEmail,
		s.cfg.FromEmail,
	)
	contentService := service.NewContentService(readStore)

	h := &routes.Handlers{
		Intake:  handlers.NewIntakeHandler(leadService, mailService),
		Content: handlers.NewContentHandler(contentService),
		Health:  handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		Submission: submissionLimiter,
	}

	routes.Setup(s.router, h, m)
	return nil
}

// Start starts the server
func (s *Server) Start() error {
	logger := logging.GetGlobalLogger()
	logger.Info("Listening on port %s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}

// Shutdown flushes telemetry before the process exits.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownTracing != nil {
		return s.shutdownTracing(ctx)
	}
	return nil
}
