package main

// @title Loopi Routing API
// @version 1.0.0
// @description Сервис маршрутов Loopi: порядок посещения выбранных на карте точек, оценка расстояния и времени,
// @description геометрия по дорогам через OSRM с заменой на прямые отрезки, справочник достопримечательностей
// @description и сохранённые места пользователей.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/loopi-routing/docs"
	"github.com/loopi-routing/internal/config"
	httpDelivery "github.com/loopi-routing/internal/delivery/http"
	"github.com/loopi-routing/internal/delivery/http/handler"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/infrastructure/osrm"
	"github.com/loopi-routing/internal/pkg/logger"
	"github.com/loopi-routing/internal/repository/cache"
	"github.com/loopi-routing/internal/repository/memory"
	"github.com/loopi-routing/internal/repository/postgres"
	"github.com/loopi-routing/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Loopi Routing")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.String("landmark_source", cfg.Landmark.Source),
		zap.String("osrm", cfg.OSRM.BaseURL),
	)

	// 3. Route cache: Redis или память процесса
	var (
		cacheRepo   repository.CacheRepository
		redisClient *cache.Redis
	)
	if cfg.UsesRedisCache() {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		cacheRepo = cache.NewMemoryCacheRepository(cfg.Cache.RouteCacheTTL, cfg.Cache.CleanupInterval, log)
	}

	// 4. Landmarks and saved locations: Postgres или встроенный справочник
	var (
		db           *postgres.DB
		landmarkRepo repository.LandmarkRepository
		savedRepo    repository.SavedLocationRepository
	)
	if cfg.UsesPostgres() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err = postgres.Migrate(migrateCtx, db.DB.DB, log)
		cancel()
		if err != nil {
			log.Fatal("Failed to migrate PostgreSQL", zap.Error(err))
		}

		landmarkRepo = postgres.NewLandmarkRepository(db)
		savedRepo = postgres.NewSavedLocationRepository(db)
	} else {
		landmarkRepo = memory.NewLandmarkRepository()
		savedRepo = memory.NewSavedLocationRepository()
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Use cases
	routingRepo := osrm.NewOSRMClient(&cfg.OSRM, log)

	routeUC := usecase.NewRouteUseCase(
		routingRepo,
		cacheRepo,
		usecase.NewRouteGuard(),
		log,
		cfg.Cache.RouteCacheTTL,
		cfg.OSRM.MaxParallel,
	)
	landmarkUC := usecase.NewLandmarkUseCase(landmarkRepo, log, cfg.Landmark.ClusterRadiusM)
	savedUC := usecase.NewSavedLocationUseCase(savedRepo, log)

	log.Info("Use cases initialized")

	// 7. HTTP
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewRouteHandler(routeUC, log),
		handler.NewLandmarkHandler(landmarkUC, log),
		handler.NewSavedLocationHandler(savedUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
