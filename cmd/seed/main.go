// Command seed загружает каталог из файла в таблицу locations PostgreSQL.
//
//	go run ./cmd/seed -file catalog.yaml
//
// Без -file используется встроенный набор данных. Существующие id не перезаписываются.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/config"
	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/pkg/logger"
	"github.com/connectflx/discovery-service/internal/repository/catalog"
	"github.com/connectflx/discovery-service/internal/repository/postgres"
)

func main() {
	file := flag.String("file", "", "catalog file (.json, .yaml, .yml); empty = embedded dataset")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// 3. Read and check the catalog before touching the database
	locations, err := catalog.NewFileSource(*file, log).Load(ctx)
	if err != nil {
		log.Fatal("Failed to read catalog", zap.Error(err))
	}
	if _, err := domain.NewCatalog(locations); err != nil {
		log.Fatal("Invalid catalog", zap.Error(err))
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Migrate and seed
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	if err := postgres.Seed(ctx, db, locations); err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}

	log.Info("Catalog seeded", zap.Int("locations", len(locations)))
}
