package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"phishguard/internal/api"
	"phishguard/internal/config"
	"phishguard/internal/model"
	"phishguard/internal/monitoring"
	"phishguard/internal/storage"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Load model artifacts. Both are required; the service must not serve
	// without them.
	meta, err := model.LoadMeta(cfg.MetaPath)
	if err != nil {
		logger.Fatal("could not load model metadata", zap.Error(err))
	}
	clf, err := model.LoadClassifier(cfg.ModelPath)
	if err != nil {
		logger.Fatal("could not load model artifact", zap.Error(err))
	}
	adapter := model.NewAdapter(clf, meta)

	// Initialize optional storage backends
	var redisStore *storage.RedisStore
	if cfg.RedisAddr != "" {
		redisStore = storage.NewRedisStore(cfg.RedisAddr, time.Duration(cfg.CacheTTLHours)*time.Hour)
		logger.Info("verdict cache enabled", zap.String("addr", cfg.RedisAddr))
	}
	var pgStore *storage.PostgresStore
	if cfg.PostgresURL != "" {
		pgStore, err = storage.NewPostgresStore(context.Background(), cfg.PostgresURL)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pgStore.Close()
		logger.Info("prediction history enabled")
	}

	// Initialize Monitoring and API Server
	metrics := monitoring.NewMetrics()
	server := api.NewServer(cfg, adapter, redisStore, pgStore, metrics, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.String("model", cfg.ModelPath),
		zap.Int("features", len(meta.Features)),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
