package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/admitly/counselor/internal/app/controllers"
	"github.com/admitly/counselor/internal/app/models/dto"
	appRepos "github.com/admitly/counselor/internal/app/repositories"
	appRoutes "github.com/admitly/counselor/internal/app/routes"
	appServices "github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/config"
	appMiddleware "github.com/admitly/counselor/internal/middleware"
	pkgAuth "github.com/admitly/counselor/internal/pkg/auth"
	"github.com/admitly/counselor/internal/pkg/callstate"
	"github.com/admitly/counselor/internal/pkg/helpers"
	"github.com/admitly/counselor/internal/pkg/logger"
	"github.com/admitly/counselor/internal/pkg/metrics"
	"github.com/admitly/counselor/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	WebhookLimiter *appMiddleware.IPRateLimiter
	JWTService     *pkgAuth.JWTService
	CallTracker    *callstate.Tracker
	Registry       *prometheus.Registry
	Logger         zerolog.Logger
}

// Close releases background resources held by the dependencies.
func (d *Dependencies) Close() {
	if d.WebhookLimiter != nil {
		d.WebhookLimiter.Stop()
	}
	if d.Services != nil {
		d.Services.WebhookService.Stop()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies creates the store, seeds it, and wires services,
// controllers and metrics on top.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	// Seeding problems are logged but do not stop the server.
	if err := seed.CreateDefaultData(context.Background(), deps.Repos, cfg.Admin.Username, cfg.Admin.Password, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.CallTracker = callstate.NewTracker()

	webhookMetrics := metrics.NewWebhookMetrics(appServices.WebhookEventTypes(), appServices.FunctionNames())
	deps.Registry = prometheus.NewRegistry()
	err := metrics.Register(deps.Registry, append(webhookMetrics.Collectors(),
		metrics.NewCollector(
			deps.Repos.CourseRepository,
			deps.Repos.VoiceCallLogRepository,
			deps.CallTracker,
			time.Now(),
		),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)...)
	if err != nil {
		return nil, err
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.CallTracker, webhookMetrics,
		appServices.Options{
			ScholarshipPercentage: cfg.Scholarship.DefaultPercentage,
			Assistant: appServices.AssistantSettings{
				PublicKey:     cfg.Voice.PublicKey,
				AssistantID:   cfg.Voice.AssistantID,
				ServerURL:     cfg.Voice.ServerURL,
				ModelProvider: cfg.Voice.ModelProvider,
				Model:         cfg.Voice.Model,
				Temperature:   cfg.Voice.Temperature,
				MaxTokens:     cfg.Voice.MaxTokens,
				VoiceProvider: cfg.Voice.VoiceProvider,
				VoiceID:       cfg.Voice.VoiceID,
			},
		}, lgr)
	deps.Services.WebhookService.StartCleanup(appServices.DefaultSessionRetention())

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.WebhookLimiter = appMiddleware.NewIPRateLimiter(
		appMiddleware.WebhookRateLimitConfig(cfg.RateLimit.WebhookRPS, cfg.RateLimit.WebhookBurst))

	deps.Controllers = appRoutes.Controllers{
		Course:      appControllers.NewCourseController(deps.Services.CourseService, logger.Component("courses")),
		Scholarship: appControllers.NewScholarshipController(deps.Services.ScholarshipService),
		VoiceLog:    appControllers.NewVoiceLogController(deps.Services.VoiceLogService),
		Webhook:     appControllers.NewWebhookController(deps.Services.WebhookService, logger.Component("webhook")),
		Assistant:   appControllers.NewAssistantController(deps.Services.AssistantService),
		Auth:        appControllers.NewAuthController(deps.Services.AuthService, logger.Component("auth")),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		lgr.Warn().Err(err).Msg("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(lgr),
	)

	appRoutes.SetupRouter(router, deps.Controllers, appRoutes.Guards{
		Auth:           deps.AuthMiddleware,
		WebhookLimiter: deps.WebhookLimiter,
		WebhookSecret:  cfg.Voice.WebhookSecret,
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	})

	return router
}
