package ports

import (
	"context"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

// RefreshTokenRepository defines the interface for refresh token persistence.
type RefreshTokenRepository interface {
	Insert(ctx context.Context, token *domain.RefreshToken) error
	FindByID(ctx context.Context, id string) (*domain.RefreshToken, error)
	Delete(ctx context.Context, id string) error
}

// RefreshTokenService manages the refresh token lifecycle.
type RefreshTokenService interface {
	// Issue persists a new token for username and returns it.
	Issue(ctx context.Context, username string) (*domain.RefreshToken, error)
	// Rotate redeems the token with the given id: the presented record is
	// deleted and a fresh one for the same user is issued. Fails with
	// domain.ErrRefreshTokenNotFound or domain.ErrRefreshTokenExpired.
	Rotate(ctx context.Context, id string) (*domain.RefreshToken, error)
}
