package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"portfolio_content/internal/api"
	"portfolio_content/internal/config"
	"portfolio_content/internal/content"
	"portfolio_content/internal/imagecache"
	"portfolio_content/internal/notion"
	"portfolio_content/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	source := notion.New(notion.Config{
		BaseURL:        cfg.Notion.BaseURL,
		APIKey:         cfg.Notion.APIKey,
		DatabaseID:     cfg.Notion.DatabaseID,
		Version:        cfg.Notion.Version,
		PageSize:       cfg.Notion.PageSize,
		Timeout:        cfg.Notion.Timeout,
		MaxAttempts:    cfg.Notion.Retry.MaxAttempts,
		InitialBackoff: cfg.Notion.Retry.InitialBackoff,
		MaxBackoff:     cfg.Notion.Retry.MaxBackoff,
	}, logger)

	// Download failures are expected and fall back silently, so the cache logs at its own level.
	images, err := imagecache.New(imagecache.Config{
		Dir:             cfg.ImageCache.Dir,
		PublicPrefix:    cfg.ImageCache.PublicPrefix,
		DefaultExt:      cfg.ImageCache.DefaultExt,
		DownloadTimeout: cfg.ImageCache.DownloadTimeout,
	}, setupLogger(cfg.ImageCache.LogLevel))
	if err != nil {
		logger.Error("failed to initialise image cache", "error", err)
		os.Exit(1)
	}

	contentService := content.NewService(source, images, logger, content.Config{
		ImageConcurrency: cfg.ImageCache.Concurrency,
	})

	// Interface-typed so a disabled database stays a true nil.
	var syncState api.SyncStateReader
	if cfg.Database.Enabled {
		db, err := postgres.Connect(context.Background(), cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")

		syncState = postgres.NewSyncStateStore(db)
	}

	router := api.NewRouter(api.NewHandler(contentService, syncState), api.RouterConfig{
		ImageDir:       images.Dir(),
		PublicPrefix:   images.PublicPrefix(),
		RequestTimeout: cfg.Server.RequestTimeout,
	}, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting content server", "addr", cfg.Server.Addr, "image_dir", images.Dir())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
