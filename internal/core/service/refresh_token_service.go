package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/ports"
)

// RefreshTokenService manages opaque refresh token records. Expiry is
// evaluated lazily when a token is presented for redemption.
type RefreshTokenService struct {
	repo ports.RefreshTokenRepository
	ttl  time.Duration
	now  func() time.Time
}

func NewRefreshTokenService(repo ports.RefreshTokenRepository, ttl time.Duration) *RefreshTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RefreshTokenService{repo: repo, ttl: ttl, now: time.Now}
}

func (s *RefreshTokenService) Issue(ctx context.Context, username string) (*domain.RefreshToken, error) {
	now := s.now().UTC()
	token := &domain.RefreshToken{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Insert(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// Rotate redeems a token id: the presented record is removed and a fresh one
// is issued for the same user. An expired record is also removed so it cannot
// be presented again.
func (s *RefreshTokenService) Rotate(ctx context.Context, id string) (*domain.RefreshToken, error) {
	token, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if token.Expired(s.now().UTC()) {
		_ = s.repo.Delete(ctx, id)
		return nil, domain.ErrRefreshTokenExpired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.Issue(ctx, token.Username)
}
