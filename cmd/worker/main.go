package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/loopi-routing/internal/config"
	"github.com/loopi-routing/internal/infrastructure/osrm"
	"github.com/loopi-routing/internal/pkg/logger"
	"github.com/loopi-routing/internal/repository/cache"
	redisRepo "github.com/loopi-routing/internal/repository/redis"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/worker"
	"github.com/loopi-routing/internal/worker/route"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Sequencing Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Connect to Redis (streams + route cache)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(
		redisClient.Client(),
		log,
		redisRepo.WithReadBlock(cfg.Worker.StreamReadTimeout),
	)

	// 4. Use case
	routeUC := usecase.NewRouteUseCase(
		osrm.NewOSRMClient(&cfg.OSRM, log),
		cache.NewCacheRepository(redisClient),
		usecase.NewRouteGuard(),
		log,
		cfg.Cache.RouteCacheTTL,
		cfg.OSRM.MaxParallel,
	)

	// 5. Workers
	workerManager := worker.NewWorkerManager(log, 0)
	workerManager.Register(route.NewSequencingWorker(
		streamRepo,
		routeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
