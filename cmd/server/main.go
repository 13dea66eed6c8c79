package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/inteligent/dashboard/internal/application/catalog"
	partnerapp "github.com/inteligent/dashboard/internal/application/partner"
	"github.com/inteligent/dashboard/internal/application/pricing"
	projectapp "github.com/inteligent/dashboard/internal/application/project"
	quoteapp "github.com/inteligent/dashboard/internal/application/quote"
	settingsapp "github.com/inteligent/dashboard/internal/application/settings"
	"github.com/inteligent/dashboard/internal/infrastructure/config"
	"github.com/inteligent/dashboard/internal/infrastructure/logger"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence"
	"github.com/inteligent/dashboard/internal/infrastructure/rendering"
	settingsstore "github.com/inteligent/dashboard/internal/infrastructure/settings"
	"github.com/inteligent/dashboard/internal/interfaces/http/handler"
	"github.com/inteligent/dashboard/internal/interfaces/http/middleware"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting dashboard backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	numberSequence := persistence.NewGormNumberSequence(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)

	// Seed demo data on an empty database
	if err := persistence.Seed(context.Background(), itemRepo, clientRepo, log); err != nil {
		log.Fatal("Failed to seed database", zap.Error(err))
	}

	// Template settings live in a JSON file next to the documents
	templateStore := settingsstore.NewFileStore(settingsstore.FileStoreConfig{
		Path:   cfg.Documents.SettingsPath,
		Logger: log,
	})

	// Document rendering pipeline: HTML composer -> headless Chrome -> disk
	composer := rendering.NewComposer(cfg.Documents.TemplateDir)
	pdfRenderer, err := rendering.NewChromedpRenderer(&rendering.ChromedpConfig{
		DefaultTimeout: cfg.Render.Timeout,
		RemoteURL:      cfg.Render.RemoteURL,
		NoSandbox:      cfg.Render.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()
	offerRenderer := rendering.NewOfferRenderer(composer, pdfRenderer)
	storage, err := rendering.NewStorage(cfg.Documents.OutputDir, log)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}

	// Initialize application services
	pricingEngine := pricing.NewEngine(itemRepo)
	quoteService := quoteapp.NewService(quoteapp.ServiceConfig{
		Repo:     quoteRepo,
		Sequence: numberSequence,
		Clients:  clientRepo,
		Engine:   pricingEngine,
		Renderer: offerRenderer,
		Storage:  storage,
		Settings: templateStore,
		Logger:   log,
	})
	settingsService := settingsapp.NewService(templateStore, offerRenderer, log)
	clientService := partnerapp.NewService(clientRepo, log)
	catalogService := catalogapp.NewService(itemRepo, log)
	projectService := projectapp.NewService(projectRepo, log)

	// Initialize HTTP handlers
	quoteHandler := handler.NewQuoteHandler(quoteService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	clientHandler := handler.NewClientHandler(clientService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	projectHandler := handler.NewProjectHandler(projectService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, recovery, logging, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register domain route groups
	router.NewRouter(engine).
		Register(quoteHandler).
		Register(settingsHandler).
		Register(clientHandler).
		Register(catalogHandler).
		Register(projectHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
