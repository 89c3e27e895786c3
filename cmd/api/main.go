package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := crypto.DefaultSource()
	if cfg.RandomSeed != nil {
		slog.Warn("using seeded random source, output is reproducible", "seed", *cfg.RandomSeed)
		src = crypto.NewSeededSource(*cfg.RandomSeed)
	}

	genService := service.NewGeneratorService(src)
	routes := handler.RouterConfig{
		Generator:      genService,
		Panel:          service.NewPanel(src),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	// Accounts and presets need the database; generation does not.
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, account and preset routes disabled", "error", err)
	} else {
		defer db.Close()

		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}

		routes.Tokens = crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
		routes.Auth = service.NewAuthService(repository.NewUserRepository(db), routes.Tokens)
		routes.Presets = service.NewPresetService(repository.NewPresetRepository(db), genService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(ctx, routes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
