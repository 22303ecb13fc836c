package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/rs/zerolog"

	_ "github.com/romulogoncalves94/help-desk/docs"
	"github.com/romulogoncalves94/help-desk/internal/api/handler"
)

// newEcho builds an Echo instance with the middleware stack shared by all
// three services: panic recovery, request ids, request logging, prometheus
// instrumentation, the request validator, and the central error handler.
func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(subsystem))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// registerHealth wires the liveness and readiness probes (no auth required).
func registerHealth(e *echo.Echo, deps map[string]handler.Pinger) {
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
}
