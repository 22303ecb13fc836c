package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/romulogoncalves94/help-desk/internal/api/handler"
	"github.com/romulogoncalves94/help-desk/internal/core/service"
	"github.com/romulogoncalves94/help-desk/internal/infrastructure/config"
	mongodb "github.com/romulogoncalves94/help-desk/internal/infrastructure/db/mongo"
	redisdb "github.com/romulogoncalves94/help-desk/internal/infrastructure/db/redis"
)

// NewAuthRouter builds the Echo instance for the auth service.
func NewAuthRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("helpdesk_auth", log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	refreshRepo := mongodb.NewRefreshTokenRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)
	refreshService := service.NewRefreshTokenService(refreshRepo, cfg.JWT.RefreshTTL)
	authService := service.NewAuthService(userRepo, refreshService, limiter, cfg.JWT.Secret, cfg.JWT.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	registerHealth(e, map[string]handler.Pinger{
		"mongodb": func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
		"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	return e
}
