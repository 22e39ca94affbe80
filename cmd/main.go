package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "advision/internal/adapter/http"
	"advision/internal/adapter/model"
	"advision/internal/adapter/postgres"
	"advision/internal/adapter/sqlite"
	"advision/internal/adapter/usecase"
	"advision/internal/config"
	"advision/internal/core/port"
	"advision/internal/db"
)

// main is the entry point of the advision backend. It loads
// configuration, loads the model artifact, optionally runs database
// migrations and seeding, initializes the configured store, then starts
// the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// The model artifact is loaded once and shared read-only across all
	// requests for the process lifetime.
	scorer, err := model.Load(cfg.Model.Path)
	if err != nil {
		logger.Error("model load error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("model artifact loaded",
		slog.String("path", cfg.Model.Path),
		slog.String("version", usecase.ModelVersion),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			logger.Error("sqlite open error", slog.Any("error", err))
			os.Exit(1)
		}
		defer store.Close()
		repo = store
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	}

	if cfg.Storage.Seed {
		if err = db.Seed(ctx, repo, scorer, cfg.Storage.SeedCount); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("seeded synthetic campaigns", slog.Int("count", cfg.Storage.SeedCount))
		}
	}

	svc := usecase.NewCampaignService(repo, scorer)
	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.CORSOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
