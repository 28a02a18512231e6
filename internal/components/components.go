package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"roadguard/internal/api"
	"roadguard/internal/config"
	"roadguard/internal/redis"
	"roadguard/internal/service"
	"roadguard/internal/storage/postgres"
	"roadguard/internal/upload"
	"roadguard/pkg/logger"
)

const alertQueueKey = "alerts:pending"

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertSender *service.AlertSender // nil when the webhook is not configured
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, alertQueueKey)
	dispatchCache := redis.NewDispatchCache(redisClient)

	evidenceStore, err := upload.NewStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init evidence store: %w", err)
	}

	scorer := service.NewVisionScorer(cfg.Vision, logger)

	dispatchSvc := service.NewDispatchService(storage.Dispatches(), alertQueue, dispatchCache, logger, nil)
	accidentSvc := service.NewAccidentService(storage.Accidents(), evidenceStore, scorer, dispatchSvc, logger)
	severitySvc := service.NewSeverityService(scorer)
	notificationSvc := service.NewNotificationService(storage.Notification())

	srv := service.NewService(accidentSvc, dispatchSvc, severitySvc, notificationSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	var alertSender *service.AlertSender
	if !cfg.Alert.Disabled && cfg.Alert.URL != "" {
		alertSender = service.NewAlertSender(logger, cfg.Alert, alertQueue)
	} else {
		logger.Info("Alert webhook disabled, dispatch alerts stay queued")
	}

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
