package ports

import (
	"context"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

// CreateUserInput carries the fields accepted on signup.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Profiles []string
}

// UpdateUserInput carries a partial update. Nil pointers mean "leave the
// stored value unchanged"; a nil Profiles slice likewise.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Profiles []string
}

type UserService interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
}
