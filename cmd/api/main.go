package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/johnquangdev/interview-coach/docs"
	"github.com/johnquangdev/interview-coach/internal/adapter/handler"
	"github.com/johnquangdev/interview-coach/internal/adapter/repository"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/cache"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/database"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/external/assemblyai"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/external/rekognition"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/monitoring"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/storage"
	"github.com/johnquangdev/interview-coach/internal/usecase/analysis"
	"github.com/johnquangdev/interview-coach/internal/usecase/coaching"
	pkgai "github.com/johnquangdev/interview-coach/pkg/ai"
	"github.com/johnquangdev/interview-coach/pkg/config"
	pkglogger "github.com/johnquangdev/interview-coach/pkg/logger"
	pkgvalidator "github.com/johnquangdev/interview-coach/pkg/validator"
)

// release is set at build time with -ldflags "-X main.release=..."
var release = "dev"

// @title           Interview Coach API
// @version         1.0
// @description     Real-time interview coaching and recorded interview analysis

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	reporter, err := monitoring.NewErrorReporter(cfg, release)
	if err != nil {
		logger.Warn("⚠️  Error reporting disabled", zap.Error(err))
		reporter = &monitoring.ErrorReporter{}
	} else if reporter.Enabled() {
		logger.Info("🛰️  Error reporting enabled")
	}
	defer reporter.Flush()

	ctx := context.Background()
	logger.Info("🔧 Initializing dependencies...")

	// Coaching rules and filler words
	logger.Info("📜 Loading coaching rules...", zap.String("path", cfg.Coaching.RulesPath))
	engine, err := coaching.LoadRuleEngine(cfg.Coaching.RulesPath)
	if err != nil {
		reporter.CaptureError(err)
		reporter.Flush()
		logger.Fatal("Failed to load coaching rules", zap.Error(err))
	}
	if !engine.HasExplicitDefault() {
		logger.Warn("⚠️  No default state configured; the last rule is used as fallback")
	}
	fillers := coaching.NewFillerExtractor(cfg.Coaching.FillerWords)

	// Text generator
	var textGen *pkgai.TextGenClient
	if cfg.TextGenEnabled() {
		textGen = pkgai.NewTextGenClient(cfg.TextGen)
		logger.Info("🤖 Text generation enabled", zap.String("model", cfg.TextGen.Model))
	} else {
		logger.Info("🤖 Text generation disabled; canned coaching text only")
	}

	// Session ledger
	sessions, closeSessions := newSessionRepository(ctx, cfg, logger)
	defer closeSessions()

	healthChecks := map[string]handler.HealthCheck{
		"storage":  nil,
		"database": nil,
	}

	// Analysis collaborators
	deps := analysis.Dependencies{Fillers: fillers}
	if textGen != nil {
		deps.Generator = textGen
	}

	if cfg.StorageEnabled() {
		logger.Info("📦 Connecting to object storage...", zap.String("bucket", cfg.Storage.BucketName))
		store, err := storage.NewMinIOClient(cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Warn("⚠️  Storage bucket check failed", zap.Error(err))
		}
		deps.Store = store
		healthChecks["storage"] = store.Ping

		if cfg.FaceDetectionEnabled() {
			faces, err := rekognition.NewClient(ctx, cfg.Storage, logger)
			if err != nil {
				logger.Warn("⚠️  Face detection disabled", zap.Error(err))
			} else {
				deps.Faces = faces
				logger.Info("🙂 Face detection enabled", zap.String("region", cfg.Storage.Region))
			}
		}
		if cfg.Transcription.APIKey != "" {
			deps.Transcriber = assemblyai.NewTranscriber(cfg.Transcription.APIKey, logger)
			logger.Info("🎙️  Transcription enabled")
		}
	} else {
		logger.Info("📦 Object storage not configured; media analysis disabled")
	}

	// Analysis history
	if cfg.Database.Enabled {
		logger.Info("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer database.CloseDB(db)

		// Production deployments manage schema with coachctl migrate
		if cfg.Database.AutoMigrate {
			n, err := database.Migrate(db, database.Up)
			if err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}
			logger.Info("🔄 Migrations applied", zap.Int("count", n))
		}

		deps.Records = repository.NewAnalysisRepository(db)
		healthChecks["database"] = pingDB(db)
	}

	// Use cases
	// Enrichment follows the external-API switch alone; without a key the
	// canned tip stays but filler-based anxiety still applies.
	coachingService := coaching.NewService(
		sessions,
		engine,
		fillers,
		coaching.NewEnricher(cfg.TextGen.EnableExternalAPIs, textGenerator(textGen), fillers),
		coaching.AlertThresholds{
			LowConfidence: cfg.Coaching.LowConfidenceThreshold,
			HighAnxiety:   cfg.Coaching.HighAnxietyThreshold,
		},
		logger,
	)
	analysisService := analysis.NewService(deps, analysis.Options{
		Poll: analysis.PollPolicy{
			Interval:          cfg.Analysis.PollInterval,
			EscalatedInterval: cfg.Analysis.PollEscalatedInterval,
			EscalateAfter:     cfg.Analysis.PollEscalateAfter,
			MaxAttempts:       cfg.Analysis.PollMaxAttempts,
		},
		Timeout: cfg.Analysis.Timeout,
	}, logger)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(reporter.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(
		handler.NewSystemHandler(cfg, healthChecks, logger),
		handler.NewCoachingHandler(coachingService, logger),
		handler.NewAnalysisHandler(analysisService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("health", fmt.Sprintf("http://%s/health", addr)),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// newSessionRepository builds the configured session ledger and its cleanup func
func newSessionRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.SessionRepository, func()) {
	if cfg.Session.Backend == config.SessionBackendRedis {
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		return repository.NewRedisSessionRepository(client, cfg.Session.TTL), func() { client.Close() }
	}

	logger.Info("🗂️  Using in-memory session ledger", zap.Duration("ttl", cfg.Session.TTL))
	store := cache.NewMemoryStore(cache.DefaultSweepInterval)
	return repository.NewMemorySessionRepository(store, cfg.Session.TTL), store.Close
}

// textGenerator avoids handing the enricher a typed nil
func textGenerator(c *pkgai.TextGenClient) coaching.TextGenerator {
	if c == nil {
		return nil
	}
	return c
}

func pingDB(db *gorm.DB) handler.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
