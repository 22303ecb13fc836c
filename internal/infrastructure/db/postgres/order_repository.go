package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

type PostgresOrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// InitSchema creates the orders table when absent. Call once at startup.
func (r *PostgresOrderRepository) InitSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            requester_id VARCHAR(45) NOT NULL,
            customer_id VARCHAR(45) NOT NULL,
            title VARCHAR(45) NOT NULL,
            description VARCHAR(3000) NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            closed_at TIMESTAMPTZ
        )`
	if _, err := r.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	const query = `INSERT INTO orders (requester_id, customer_id, title, description, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	created := *order
	err := r.db.QueryRow(ctx, query,
		order.RequesterID, order.CustomerID, order.Title, order.Description,
		string(order.Status), order.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &created, nil
}

func (r *PostgresOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `SELECT id, requester_id, customer_id, title, description, status, created_at, closed_at
        FROM orders WHERE id = $1`

	var o domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.RequesterID, &o.CustomerID, &o.Title, &o.Description,
		&o.Status, &o.CreatedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (r *PostgresOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	const query = `SELECT id, requester_id, customer_id, title, description, status, created_at, closed_at
        FROM orders ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.RequesterID, &o.CustomerID, &o.Title, &o.Description,
			&o.Status, &o.CreatedAt, &o.ClosedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
