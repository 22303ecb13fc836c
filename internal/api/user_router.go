package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/romulogoncalves94/help-desk/internal/api/handler"
	"github.com/romulogoncalves94/help-desk/internal/api/middleware"
	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/service"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/config"
	mongodb "github.com/romulogoncalves94/help-desk/internal/infrastructure/db/mongo"
)

// NewUserRouter builds the Echo instance for the user service. Signup is
// open; reads and updates require a bearer token, and the full listing is
// restricted to admins.
func NewUserRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("helpdesk_user", log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)
	auth := middleware.Auth(cfg.JWT.Secret)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.FindByID, auth)
	users.PUT("/:id", userHandler.Update, auth)
	users.GET("", userHandler.FindAll, auth, middleware.RBAC(domain.ProfileAdmin))

	registerHealth(e, map[string]handler.Pinger{
		"mongodb": func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
	})

	return e
}
