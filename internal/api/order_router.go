package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/romulogoncalves94/help-desk/internal/api/handler"
	"github.com/romulogoncalves94/help-desk/internal/api/middleware"
	"github.com/romulogoncalves94/help-desk/internal/core/service"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/config"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/db/postgres"
)

// NewOrderRouter builds the Echo instance for the order service. All order
// routes require a bearer token.
func NewOrderRouter(db postgres.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("helpdesk_order", log)

	// --- Dependencies ---
	orderRepo := postgres.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo)
	orderHandler := handler.NewOrderHandler(orderService)
	auth := middleware.Auth(cfg.JWT.Secret)

	// --- Order routes ---
	orders := e.Group("/api/orders", auth)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.FindByID)
	orders.GET("", orderHandler.FindAll)

	registerHealth(e, map[string]handler.Pinger{
		"postgres": func(ctx context.Context) error { return db.Ping(ctx) },
	})

	return e
}
