package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	"github.com/SscSPs/notion_quote_viewer/internal/core/services"
	"github.com/SscSPs/notion_quote_viewer/internal/handlers"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/cache"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/config"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/pdf"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Notion Quote Viewer API
// @version 1.0
// @description Read API and operator endpoints for invoices stored in Notion.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client, err := notion.NewClient(cfg.NotionAPIKey,
		notion.WithBaseURL(cfg.NotionBaseURL),
		notion.WithVersion(cfg.NotionVersion),
		notion.WithHTTPClient(&http.Client{Timeout: cfg.NotionTimeout}),
		notion.WithLogger(logger),
		notion.WithContextLogger(middleware.GetLoggerFromCtx),
	)
	if err != nil {
		logger.Error("Failed to create document store client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore := newCacheStore(cfg, logger)
	defer closeStore()

	container, err := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{Pages: client}, store)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	maintenanceLimiter, err := middleware.NewMemoryLimiter(cfg.MaintenanceRateLimit)
	if err != nil {
		logger.Error("Invalid maintenance rate limit", slog.String("rate", cfg.MaintenanceRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, closeRenderer := newPDFRenderer(cfg, logger)
	defer closeRenderer()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, per-request memo)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.RequestMemo())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = handlers.RegisterRoutes(r, cfg, container, handlers.Dependencies{
		PDF:                renderer,
		MaintenanceLimiter: maintenanceLimiter,
	})
	if err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("schema", cfg.NotionSchema))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newCacheStore uses redis when REDIS_URL is set so several replicas share one
// list cache, and an in-process store otherwise.
func newCacheStore(cfg *config.Config, logger *slog.Logger) (cache.Store, func()) {
	if cfg.RedisURL == "" {
		logger.Info("Using in-memory list cache")
		return cache.NewMemoryStore(), func() {}
	}

	store, err := cache.NewRedisStore(context.Background(), cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Using redis list cache")
	return store, func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
		}
	}
}

func newPDFRenderer(cfg *config.Config, logger *slog.Logger) (pdf.Renderer, func()) {
	if !cfg.PDFEnabled {
		return pdf.DisabledRenderer{}, func() {}
	}
	r := pdf.NewChromedpRenderer(pdf.ChromedpConfig{
		RemoteURL: cfg.ChromeRemoteURL,
		NoSandbox: cfg.ChromeNoSandbox,
		Logger:    logger,
	})
	logger.Info("PDF export enabled", slog.Bool("remote", cfg.ChromeRemoteURL != ""))
	return r, r.Close
}
