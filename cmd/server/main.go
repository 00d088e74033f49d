package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/placeholder"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/routes"
	"invoice-dashboard-backend/internal/services/seeding"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env
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
	defer logger.Sync()
	l := logger.Get()

	ctx := context.Background()

	// No request is served without a verified connection.
	store, err := repository.Open(ctx, cfg.DatabaseURL, repository.Options{
		MongoDatabase: cfg.MongoDatabase,
		Logger:        l,
	})
	if err != nil {
		l.Error("failed to connect to database", zap.Error(err))
		return 1
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
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

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", handler.RunIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handler.NewSeedHandler(svc, l))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(srv, sigChan, l); err != nil {
		l.Error("server failed", zap.Error(err))
		return 1
	}
	return 0
}

// serve runs srv until stop fires or listening fails, then shuts it down.
func serve(srv *http.Server, stop <-chan os.Signal, l *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		l.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		return err
	}

	l.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
