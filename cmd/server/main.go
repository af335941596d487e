package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/config"
	"github.com/hongminglow/movies-be/internal/logging"
	"github.com/hongminglow/movies-be/internal/server"
	"github.com/hongminglow/movies-be/internal/storage"
	"github.com/hongminglow/movies-be/internal/storage/memory"
	"github.com/hongminglow/movies-be/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("init storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		logger.Error("init token manager", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, store, tokens, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("movies backend listening", "addr", srv.Addr(), "driver", cfg.StorageDriver)
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.StorageDriver == config.DriverMemory {
		return memory.New(), nil
	}
	return postgres.New(ctx, cfg.DatabaseURL)
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
