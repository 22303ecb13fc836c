package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/romulogoncalves94/help-desk/internal/api"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/config"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/db/postgres"
	"github.com/romulogoncalves94/help-desk/pkg/logger"
)

// @title        Helpdesk Order API
// @version      1.0
// @description  Order endpoints for the helpdesk platform.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	if err := postgres.NewOrderRepository(pool).InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	e := api.NewOrderRouter(pool, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("order service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	pool.Close()
}
