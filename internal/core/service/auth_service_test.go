package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

type stubLimiter struct {
	blocked  bool
	failures map[string]int
	resets   map[string]int
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), resets: make(map[string]int)}
}

func (l *stubLimiter) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	l.resets[email]++
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo, *stubLimiter) {
	t.Helper()
	users := newStubUserRepo()
	limiter := newStubLimiter()
	refresh := NewRefreshTokenService(newStubRefreshTokenRepo(), 24*time.Hour)
	svc := NewAuthService(users, refresh, limiter, "test-secret", time.Hour)
	return svc, users, limiter
}

func seedUser(t *testing.T, repo *stubUserRepo, name, email, password string, profiles ...string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Profiles:     profiles,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return user
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, limiter := newAuthFixture(t)
	seeded := seedUser(t, users, "Alice", "a@b.com", "secret1", domain.ProfileAdmin, domain.ProfileTechnician)

	result, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.RefreshToken == "" {
		t.Fatalf("expected token and refresh id, got %+v", result)
	}
	if result.Type != "Bearer" {
		t.Fatalf("expected Bearer type, got %s", result.Type)
	}

	claims := parseClaims(t, result.Token)
	if claims["sub"] != "a@b.com" {
		t.Fatalf("expected subject a@b.com, got %v", claims["sub"])
	}
	if claims["id"] != seeded.ID {
		t.Fatalf("expected id claim %s, got %v", seeded.ID, claims["id"])
	}
	if claims["name"] != "Alice" {
		t.Fatalf("expected name claim, got %v", claims["name"])
	}
	authorities, ok := claims["authorities"].([]interface{})
	if !ok || len(authorities) != 2 {
		t.Fatalf("expected two authorities, got %v", claims["authorities"])
	}
	if limiter.resets["a@b.com"] != 1 {
		t.Fatalf("expected limiter reset after success")
	}
}

func TestAuthService_Login_SignsWithHS512(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedUser(t, users, "Alice", "a@b.com", "secret1")

	result, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	parsed, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("unexpected alg %s", token.Method.Alg())
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected HS512 signature, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, limiter := newAuthFixture(t)
	seedUser(t, users, "Alice", "a@b.com", "secret1")

	if _, err := svc.Login(context.Background(), "a@b.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures["a@b.com"] != 1 {
		t.Fatalf("expected failure to be recorded")
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	// An unknown account must be indistinguishable from a bad password.
	if _, err := svc.Login(context.Background(), "ghost@b.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc, users, limiter := newAuthFixture(t)
	seedUser(t, users, "Alice", "a@b.com", "secret1")
	limiter.blocked = true

	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedUser(t, users, "Alice", "a@b.com", "secret1", domain.ProfileCustomer)

	login, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.Token == "" {
		t.Fatalf("expected a new token")
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatalf("expected refresh id to rotate")
	}

	claims := parseClaims(t, refreshed.Token)
	if claims["sub"] != "a@b.com" {
		t.Fatalf("expected subject to carry over, got %v", claims["sub"])
	}

	// The redeemed id must not be usable a second time.
	if _, err := svc.Refresh(context.Background(), login.RefreshToken); err != domain.ErrRefreshTokenNotFound {
		t.Fatalf("expected old id to be rejected, got %v", err)
	}
}

func TestAuthService_Refresh_UnknownID(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Refresh(context.Background(), "does-not-exist"); err != domain.ErrRefreshTokenNotFound {
		t.Fatalf("expected ErrRefreshTokenNotFound, got %v", err)
	}
}

func TestAuthService_Refresh_PicksUpProfileChanges(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seeded := seedUser(t, users, "Alice", "a@b.com", "secret1", domain.ProfileCustomer)

	login, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	seeded.Profiles = []string{domain.ProfileCustomer, domain.ProfileAdmin}
	if _, err := users.Update(context.Background(), seeded); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	claims := parseClaims(t, refreshed.Token)
	authorities, _ := claims["authorities"].([]interface{})
	if len(authorities) != 2 {
		t.Fatalf("expected refreshed claims to include new profile, got %v", claims["authorities"])
	}
}
