// Command seed runs the seeding workflow once without starting the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/placeholder"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/seeding"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(!cfg.IsProduction(), logger.LogLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	os.Exit(run(cfg, logger.Get()))
}

func run(cfg *config.Config, l *zap.Logger) int {
	defer logger.Sync()
	ctx := context.Background()

	store, err := repository.Open(ctx, cfg.DatabaseURL, repository.Options{
		MongoDatabase: cfg.MongoDatabase,
		Logger:        l,
	})
	if err != nil {
		l.Error("failed to connect to database", zap.Error(err))
		return 1
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			l.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := repository.NewSchemaRegistry(store).Register(ctx); err != nil {
		l.Error("failed to register schemas", zap.Error(err))
		return 1
	}

	svc := seeding.NewSeedService(store, placeholder.Default(),
		seeding.WithLogger(l),
		seeding.WithMaxParallel(cfg.SeedMaxParallel),
	)
	report, seedErr := svc.Seed(ctx)

	if report != nil {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))
	}
	if seedErr != nil {
		l.Error("seeding failed", zap.Error(seedErr))
		return 1
	}
	return 0
}
