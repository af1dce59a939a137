package main

// @title Finger Lakes Discovery API
// @version 1.0.0
// @description Каталог виноделен, пивоварен, сидрерий и дистиллерий региона Finger Lakes.
// @description
// @description Основные возможности:
// @description - Поиск и фильтрация по типу, специализации и озеру
// @description - Значения фильтров, выведенные из каталога
// @description - Состояние оболочки приложения: выбор локации, панели, директивы перецентрирования карты
// @description - Прижатие вида карты к рамке региона

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

	"go.uber.org/zap"

	_ "github.com/connectflx/discovery-service/docs"
	"github.com/connectflx/discovery-service/internal/config"
	httpDelivery "github.com/connectflx/discovery-service/internal/delivery/http"
	"github.com/connectflx/discovery-service/internal/delivery/http/handler"
	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
	"github.com/connectflx/discovery-service/internal/pkg/logger"
	"github.com/connectflx/discovery-service/internal/repository/cache"
	"github.com/connectflx/discovery-service/internal/repository/catalog"
	"github.com/connectflx/discovery-service/internal/repository/memory"
	"github.com/connectflx/discovery-service/internal/repository/postgres"
	redisRepo "github.com/connectflx/discovery-service/internal/repository/redis"
	"github.com/connectflx/discovery-service/internal/usecase"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
	"github.com/connectflx/discovery-service/internal/worker"
	sessionWorker "github.com/connectflx/discovery-service/internal/worker/session"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync() //nolint:errcheck

	log.Info("Starting Discovery Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("session_store", cfg.Session.Store),
	)

	checks := map[string]handler.HealthChecker{}

	// 3. Load catalog
	var source repository.CatalogSource
	var db *postgres.DB
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		checks["postgres"] = db
		source = postgres.NewCatalogRepository(db)
	default:
		source = catalog.NewFileSource(cfg.Catalog.Path, log)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	locations, err := source.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	cat, err := domain.NewCatalog(locations)
	if err != nil {
		log.Fatal("Invalid catalog", zap.Error(err))
	}
	log.Info("Catalog loaded", zap.Int("locations", cat.Len()))

	// 4. Connect to Redis (optional)
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		checks["redis"] = redisClient
	}

	// 5. Session store and directive publisher
	workers := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)

	var sessions repository.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		sessions = cache.NewSessionRepository(cache.NewCacheRepository(redisClient))
	default:
		memStore := memory.NewSessionRepository()
		sessions = memStore
		workers.Register(sessionWorker.NewJanitor(memStore, cfg.Session.SweepInterval, log))
	}

	publisher := usecase.NewNoopDirectivePublisher()
	if cfg.Directive.StreamEnabled {
		streams := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Directive.MaxLen, log)
		publisher = usecase.NewStreamDirectivePublisher(streams, cfg.Directive.Stream)
		log.Info("Selection directives published to stream", zap.String("stream", cfg.Directive.Stream))
	}

	// 6. Initialize Use Cases
	policy := cfg.Map.MapPolicy()
	presenter := dto.NewPresenter(cfg.Detail.PlaceholderImage, policy)

	catalogUC := usecase.NewCatalogUseCase(cat, presenter, log)
	mapUC := usecase.NewMapUseCase(cat, policy, presenter, cfg.Mapbox.StyleURL, cfg.Mapbox.AccessToken)
	sessionUC := usecase.NewSessionUseCase(cat, sessions, publisher, presenter, policy, cfg.Session.TTL, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(cat.Len(), checks, log),
		handler.NewLocationHandler(catalogUC, log),
		handler.NewMapHandler(mapUC, log),
		handler.NewSessionHandler(sessionUC, log),
	)

	// 8. Start workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	if workers.Len() > 0 {
		if err := workers.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 10. Graceful shutdown: сервер, затем воркеры, затем соединения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workers.Len() > 0 {
		if err := workers.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
