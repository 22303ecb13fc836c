package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

type stubRefreshTokenRepo struct {
	tokens map[string]*domain.RefreshToken
}

func newStubRefreshTokenRepo() *stubRefreshTokenRepo {
	return &stubRefreshTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *stubRefreshTokenRepo) Insert(_ context.Context, token *domain.RefreshToken) error {
	clone := *token
	r.tokens[token.ID] = &clone
	return nil
}

func (r *stubRefreshTokenRepo) FindByID(_ context.Context, id string) (*domain.RefreshToken, error) {
	t, ok := r.tokens[id]
	if !ok {
		return nil, domain.ErrRefreshTokenNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubRefreshTokenRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tokens[id]; !ok {
		return domain.ErrRefreshTokenNotFound
	}
	delete(r.tokens, id)
	return nil
}

func TestRefreshTokenService_Issue(t *testing.T) {
	repo := newStubRefreshTokenRepo()
	svc := NewRefreshTokenService(repo, time.Hour)

	first, err := svc.Issue(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !first.ExpiresAt.After(first.CreatedAt) {
		t.Fatalf("expected expiresAt > createdAt, got %v / %v", first.ExpiresAt, first.CreatedAt)
	}
	if got := first.ExpiresAt.Sub(first.CreatedAt); got != time.Hour {
		t.Fatalf("expected TTL of 1h, got %v", got)
	}

	second, err := svc.Issue(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("second Issue returned error: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected unique ids, both were %s", first.ID)
	}
	if len(repo.tokens) != 2 {
		t.Fatalf("expected both records persisted, got %d", len(repo.tokens))
	}
}

func TestRefreshTokenService_Rotate_Unknown(t *testing.T) {
	svc := NewRefreshTokenService(newStubRefreshTokenRepo(), time.Hour)

	if _, err := svc.Rotate(context.Background(), "nope"); !errors.Is(err, domain.ErrRefreshTokenNotFound) {
		t.Fatalf("expected ErrRefreshTokenNotFound, got %v", err)
	}
}

func TestRefreshTokenService_Rotate_Expired(t *testing.T) {
	repo := newStubRefreshTokenRepo()
	svc := NewRefreshTokenService(repo, time.Hour)

	token, err := svc.Issue(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = func() time.Time { return token.ExpiresAt.Add(time.Minute) }

	if _, err := svc.Rotate(context.Background(), token.ID); !errors.Is(err, domain.ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
	if _, ok := repo.tokens[token.ID]; ok {
		t.Fatalf("expected expired record to be removed")
	}
}

func TestRefreshTokenService_Rotate_ExactExpiryInstant(t *testing.T) {
	repo := newStubRefreshTokenRepo()
	svc := NewRefreshTokenService(repo, time.Hour)

	token, _ := svc.Issue(context.Background(), "bob@example.com")
	svc.now = func() time.Time { return token.ExpiresAt }

	if _, err := svc.Rotate(context.Background(), token.ID); !errors.Is(err, domain.ErrRefreshTokenExpired) {
		t.Fatalf("expected expiry at the exact instant, got %v", err)
	}
}

func TestRefreshTokenService_Rotate_InvalidatesOldID(t *testing.T) {
	repo := newStubRefreshTokenRepo()
	svc := NewRefreshTokenService(repo, time.Hour)

	token, _ := svc.Issue(context.Background(), "carol@example.com")

	rotated, err := svc.Rotate(context.Background(), token.ID)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if rotated.ID == token.ID {
		t.Fatalf("expected a fresh id on rotation")
	}
	if rotated.Username != "carol@example.com" {
		t.Fatalf("expected owner to carry over, got %s", rotated.Username)
	}

	if _, err := svc.Rotate(context.Background(), token.ID); !errors.Is(err, domain.ErrRefreshTokenNotFound) {
		t.Fatalf("expected rotated-out id to be gone, got %v", err)
	}
	if _, err := svc.Rotate(context.Background(), rotated.ID); err != nil {
		t.Fatalf("expected replacement id to be redeemable, got %v", err)
	}
}
