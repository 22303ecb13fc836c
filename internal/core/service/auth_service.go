package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/ports"
)

const tokenType = "Bearer"

// AuthService implements credential authentication and token refresh.
type AuthService struct {
	users     ports.UserRepository
	refresh   ports.RefreshTokenService
	limiter   ports.LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(users ports.UserRepository, refresh ports.RefreshTokenService, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:     users,
		refresh:   refresh,
		limiter:   limiter,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Login verifies the password against the stored hash and issues a signed
// token plus a refresh token id. Unknown email and wrong password both fail
// with ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if blocked, err := s.limiter.TooManyFailures(ctx, email); err == nil && blocked {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.limiter.RecordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		_ = s.limiter.RecordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}
	_ = s.limiter.Reset(ctx, email)

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.refresh.Issue(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: token, RefreshToken: refreshToken.ID, Type: tokenType}, nil
}

// Refresh exchanges a valid refresh token id for a fresh signed token. The
// user's claims are re-resolved so profile changes since login take effect.
// The presented id is rotated out and the replacement returned.
func (s *AuthService) Refresh(ctx context.Context, refreshTokenID string) (*ports.RefreshResult, error) {
	rotated, err := s.refresh.Rotate(ctx, refreshTokenID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, rotated.Username)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.RefreshResult{Token: token, RefreshToken: rotated.ID}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":         user.Email,
		"id":          user.ID,
		"name":        user.Name,
		"authorities": user.Profiles,
		"exp":         s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
