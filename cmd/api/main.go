package main

// @title Route Suggestion Service API
// @version 1.0.0
// @description Сервис подбора пешеходных и велосипедных маршрутов по фиксированному каталогу мест.
// @description
// @description Основные возможности:
// @description - GeoJSON-источник со всеми местами каталога
// @description - Фильтр мест по маскам интересов и пожеланий
// @description - Построение маршрута от точки входа и ссылка на Mapbox Directions API
// @description - Статистика построенных маршрутов

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/route-suggestion-service/docs"
	"github.com/route-suggestion-service/internal/config"
	httpDelivery "github.com/route-suggestion-service/internal/delivery/http"
	"github.com/route-suggestion-service/internal/delivery/http/handler"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/infrastructure/mapbox"
	"github.com/route-suggestion-service/internal/pkg/logger"
	"github.com/route-suggestion-service/internal/repository/cache"
	"github.com/route-suggestion-service/internal/repository/file"
	"github.com/route-suggestion-service/internal/repository/postgres"
	redisRepo "github.com/route-suggestion-service/internal/repository/redis"
	"github.com/route-suggestion-service/internal/routing"
	"github.com/route-suggestion-service/internal/usecase"
	"go.uber.org/zap"
)

const serviceName = "route-suggestion-service"

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

	log.Info("Starting Route Suggestion Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	checks := make(map[string]handler.HealthChecker)

	// 3. Catalog source
	var source repository.CatalogSource
	var db *postgres.DB
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		checks["postgres"] = db
		source = postgres.NewCatalogSource(db, log)
	default:
		source = file.NewCatalogSource(cfg.Catalog.PlacesPath, cfg.Catalog.EventsPath, log)
	}

	// 4. Build the catalog, any failure here is fatal
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat, err := usecase.LoadCatalog(ctx, source, log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	// 5. Optional Redis: event stream, statistics, stats cache
	var (
		redisClient *cache.Redis
		publisher   repository.EventPublisher
		statsUC     *usecase.StatsUseCase
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		checks["redis"] = redisClient

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		statsRepo := redisRepo.NewStatsRepository(redisClient.Client(), log)
		cacheRepo := cache.NewCacheRepository(redisClient)

		publisher = redisRepo.NewEventPublisher(streamRepo, redisRepo.DefaultBreakerSettings, log)
		statsUC = usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsTTL, cfg.Worker.TopPlaces, log)

		log.Info("Redis connected")
	}

	// 6. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(cat, cfg.Cache.FilterTTL, log)
	selector := routing.NewSelector(nil, cfg.Route.MaxPlaces, cfg.Route.MinPlaces)
	routeUC := usecase.NewRouteUseCase(
		catalogUC,
		selector,
		mapbox.NewLinkBuilder(&cfg.Mapbox),
		publisher,
		log,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	healthHandler := handler.NewHealthHandler(catalogUC, checks, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		logger.Named(log, serviceName, "http"),
		catalogHandler,
		routeHandler,
		statsHandler,
		healthHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
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
