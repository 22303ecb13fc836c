package service

import (
	"context"
	"time"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/ports"
)

// OrderService implements order creation and lookup.
type OrderService struct {
	repo ports.OrderRepository
	now  func() time.Time
}

func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{repo: repo, now: time.Now}
}

// Create maps the free-text status label onto the order status enum and
// persists the order. CreatedAt is always stamped server-side; any
// caller-supplied value is ignored.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(in.Status)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		RequesterID: in.RequesterID,
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		CreatedAt:   s.now().UTC(),
	}

	return s.repo.Create(ctx, order)
}

func (s *OrderService) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) FindAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}
