package ports

import (
	"context"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

// CreateOrderInput carries the fields accepted on order creation. Status is
// the free-text label matched against the order status descriptions.
type CreateOrderInput struct {
	RequesterID string
	CustomerID  string
	Title       string
	Description string
	Status      string
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}
