package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"portfolio_content/internal/config"
	"portfolio_content/internal/content"
	"portfolio_content/internal/imagecache"
	"portfolio_content/internal/notion"
	"portfolio_content/internal/publisher"
	"portfolio_content/internal/scheduler"
	"portfolio_content/internal/storage/postgres"
	"portfolio_content/internal/warmer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single warm pass and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	// Interface-typed so a disabled backend stays a true nil.
	var (
		syncState warmer.SyncStateStore
		txManager warmer.TransactionManager
		notifier  warmer.Publisher
	)

	if cfg.Database.Enabled {
		db, err := postgres.Connect(ctx, cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")

		syncState = postgres.NewSyncStateStore(db)
		txManager = postgres.NewTransactionManager(db)
	}

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()

		notifier = rabbitMQ
	}

	warmService := warmer.NewService(contentService, syncState, txManager, notifier, logger)

	if *once {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Warmer.RunTimeout)
		defer cancel()

		if _, err := warmService.Sync(runCtx); err != nil {
			logger.Error("warm run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting content warmer",
		"interval", cfg.Warmer.Interval,
		"database", cfg.Database.Enabled,
		"rabbitmq", cfg.RabbitMQ.Enabled,
	)

	sched := scheduler.NewScheduler(warmService, cfg.Warmer.Interval, cfg.Warmer.RunTimeout, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
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
