package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentormatch/mentormatch-api/config"
	"github.com/mentormatch/mentormatch-api/internal/cache"
	"github.com/mentormatch/mentormatch-api/internal/database/postgres"
	"github.com/mentormatch/mentormatch-api/internal/handlers"
	"github.com/mentormatch/mentormatch-api/internal/matching"
	"github.com/mentormatch/mentormatch-api/internal/middleware"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	"github.com/mentormatch/mentormatch-api/internal/services"
	"github.com/mentormatch/mentormatch-api/pkg/db"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"github.com/mentormatch/mentormatch-api/pkg/profiling"
	"github.com/mentormatch/mentormatch-api/pkg/storage"
	"github.com/mentormatch/mentormatch-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// routeHandlers groups everything the router needs
type routeHandlers struct {
	health       *handlers.HealthHandler
	adminAuth    *handlers.AdminAuthHandler
	organization *handlers.OrganizationHandler
	formTemplate *handlers.FormTemplateHandler
	intake       *handlers.IntakeHandler
	participant  *handlers.ParticipantHandler
	match        *handlers.MatchHandler
	session      *handlers.SessionHandler
}

type rateLimiters struct {
	general *middleware.RateLimiter
	auth    *middleware.RateLimiter
	intake  *middleware.RateLimiter
	admin   *middleware.RateLimiter
}

// registerPublicRoutes registers unauthenticated intake form routes
func registerPublicRoutes(v1 *gin.RouterGroup, h routeHandlers, limiters rateLimiters) {
	forms := v1.Group("/public/organizations/:orgId/forms/:formId")
	forms.GET("", limiters.general.Middleware(), h.intake.GetForm)
	forms.POST("/submit", limiters.intake.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), h.intake.Submit)
}

// registerAdminRoutes registers organization admin routes. Every route requires
// an admin session scoped to :orgId.
func registerAdminRoutes(v1 *gin.RouterGroup, cfg *config.Config, adminAuthService *services.AdminAuthService, h routeHandlers, limiters rateLimiters) {
	auth := v1.Group("/auth/admin")
	auth.POST("/token", limiters.auth.Middleware(), h.adminAuth.IssueToken)
	auth.POST("/logout", h.adminAuth.Logout)
	auth.GET("/session",
		middleware.AdminSessionMiddleware(adminAuthService.GetTokenManager(), cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure),
		h.adminAuth.GetSession)

	org := v1.Group("/organizations/:" + middleware.OrganizationParam)
	org.Use(
		limiters.admin.Middleware(),
		middleware.AdminSessionMiddleware(adminAuthService.GetTokenManager(), cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure),
		middleware.RequireOrganizationAccess(),
	)

	// Organization profile and settings
	org.GET("", h.organization.GetOrganization)
	org.PATCH("", h.organization.UpdateOrganization)
	org.POST("/logo", middleware.BodySizeLimitMiddleware(middleware.DefaultMaxBodySize), h.organization.UploadLogo)
	org.PUT("/match-settings", h.organization.UpdateMatchSettings)
	org.POST("/invitations", h.organization.SendInvitations)
	org.GET("/analytics", h.organization.GetAnalytics)

	// Form templates
	org.GET("/form-templates", h.formTemplate.ListTemplates)
	org.POST("/form-templates", h.formTemplate.CreateTemplate)
	org.GET("/form-templates/:id", h.formTemplate.GetTemplate)
	org.PATCH("/form-templates/:id", h.formTemplate.UpdateTemplate)
	org.DELETE("/form-templates/:id", h.formTemplate.DeleteTemplate)

	// Participants
	org.GET("/mentors", h.participant.ListMentors)
	org.POST("/mentors", h.participant.CreateMentor)
	org.GET("/mentors/:id", h.participant.GetMentor)
	org.PATCH("/mentors/:id", h.participant.UpdateMentor)
	org.POST("/mentors/:id/approve", h.participant.ApproveMentor)
	org.GET("/mentees", h.participant.ListMentees)
	org.POST("/mentees", h.participant.CreateMentee)
	org.GET("/mentees/:id", h.participant.GetMentee)
	org.PATCH("/mentees/:id", h.participant.UpdateMentee)
	org.POST("/mentees/:id/approve", h.participant.ApproveMentee)
	org.GET("/mentees/:id/suggestions", h.match.GetSuggestions)

	// Matches
	org.GET("/matches", h.match.ListMatches)
	org.POST("/matches", h.match.CreateMatch)
	org.POST("/matches/generate", h.match.GenerateMatches)
	org.GET("/matches/:id", h.match.GetMatch)
	org.GET("/matches/:id/details", h.match.GetMatchDetails)
	org.POST("/matches/:id/approve", h.match.ApproveMatch)
	org.POST("/matches/:id/reject", h.match.RejectMatch)
	org.POST("/matches/:id/follow-up", h.match.SendFollowUp)

	// Sessions
	org.GET("/matches/:id/sessions", h.session.ListSessions)
	org.POST("/matches/:id/sessions", h.session.CreateSession)
	org.GET("/sessions/:id", h.session.GetSession)
	org.PATCH("/sessions/:id", h.session.UpdateSession)
	org.POST("/sessions/:id/request-feedback", h.session.RequestFeedback)
}

// matchingDefaults builds the fallback scoring settings from configuration
func matchingDefaults(cfg config.MatchingConfig) matching.Settings {
	return matching.Settings{
		Weights: models.MatchWeights{
			Expertise:     cfg.WeightExpertise,
			Industry:      cfg.WeightIndustry,
			Availability:  cfg.WeightAvailability,
			MeetingFormat: cfg.WeightMeetingFormat,
		},
		Threshold:    cfg.Threshold,
		MaxPerMentee: cfg.MaxPerMentee,
	}
}

func newEmailSender(cfg config.EmailConfig) email.Sender {
	opts := email.Options{
		FromAddress:   cfg.FromAddress,
		FromName:      cfg.FromName,
		SafeRecipient: cfg.SafeRecipient,
	}
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, e-mails will only be logged")
		return email.NewLogSender(opts)
	}
	return email.NewSendGridSender(cfg.SendGridAPIKey, opts)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorMatch API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Options{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.AlloyEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling
	profilerStop, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Error("Failed to initialize profiler", zap.Error(err))
	} else {
		defer profilerStop()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:        cfg.Database.URL,
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		CACertPath: cfg.Database.CACertPath,
		ServerName: cfg.Database.ServerName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	dbClient := postgres.NewClient(pool)
	defer dbClient.Close()

	// NOTE: Database migrations run separately via the migrate command

	// Object storage is optional; logo uploads answer 503 without it
	var uploader services.ImageUploader
	if cfg.Storage.Enabled() {
		storageClient, storageErr := storage.NewStorageClient(storage.Options{
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if storageErr != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(storageErr))
		}
		uploader = storageClient
	} else {
		logger.Warn("Object storage not configured, logo uploads disabled")
	}

	sender := newEmailSender(cfg.Email)

	// Repositories
	organizationCache := cache.NewOrganizationCache(dbClient, cfg.Cache.OrganizationTTLSeconds)
	orgRepo := repository.NewOrganizationRepository(dbClient, organizationCache)

	// Services
	organizationService := services.NewOrganizationService(orgRepo, uploader)
	formTemplateService := services.NewFormTemplateService(dbClient, orgRepo)
	intakeService := services.NewIntakeService(dbClient, dbClient, dbClient)
	mentorService := services.NewMentorService(dbClient, orgRepo, sender)
	menteeService := services.NewMenteeService(dbClient, orgRepo, sender)
	matchService := services.NewMatchService(dbClient, dbClient, dbClient, dbClient, orgRepo, matchingDefaults(cfg.Matching))
	lifecycleService := services.NewMatchLifecycleService(dbClient, dbClient, dbClient, dbClient, orgRepo, sender)
	sessionService := services.NewSessionService(dbClient, dbClient, lifecycleService)
	invitationService := services.NewInvitationService(orgRepo, dbClient, sender, cfg.Server.BaseURL)
	analyticsService := services.NewAnalyticsService(dbClient, orgRepo)
	adminAuthService := services.NewAdminAuthService(orgRepo, cfg)

	// Handlers
	h := routeHandlers{
		health:       handlers.NewHealthHandler(dbClient.Ping),
		adminAuth:    handlers.NewAdminAuthHandler(adminAuthService),
		organization: handlers.NewOrganizationHandler(organizationService, analyticsService, invitationService),
		formTemplate: handlers.NewFormTemplateHandler(formTemplateService),
		intake:       handlers.NewIntakeHandler(intakeService),
		participant:  handlers.NewParticipantHandler(mentorService, menteeService),
		match:        handlers.NewMatchHandler(matchService, lifecycleService),
		session:      handlers.NewSessionHandler(sessionService, lifecycleService),
	}

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	handlers.UseJSONFieldNames()
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware(cfg.AdminSession.CookieSecure))

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // admin session cookie
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiter cleanup goroutines stop with this context
	limiterCtx, stopLimiters := context.WithCancel(context.Background())
	defer stopLimiters()

	limiters := rateLimiters{
		general: middleware.NewRateLimiter(limiterCtx, "general", 100, 200),
		auth:    middleware.NewRateLimiter(limiterCtx, "admin_auth", 0.0167, 5), // 1 req/min, burst of 5
		intake:  middleware.NewRateLimiter(limiterCtx, "intake", 0.1, 5),
		admin:   middleware.NewRateLimiter(limiterCtx, "admin", 20, 40),
	}

	// Operational endpoints (not versioned)
	api := router.Group("/api")
	api.GET("/healthcheck", limiters.general.Middleware(), h.health.Healthcheck)
	api.GET("/metrics", limiters.general.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	registerPublicRoutes(v1, h, limiters)
	registerAdminRoutes(v1, cfg, adminAuthService, h, limiters)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
