package domain

import "time"

// OrderStatus is the lifecycle state of a helpdesk order. The value is the
// human-readable description used on the wire and in storage.
type OrderStatus string

const (
	StatusOpen       OrderStatus = "Open"
	StatusClosed     OrderStatus = "Closed"
	StatusInProgress OrderStatus = "In Progress"
	StatusCanceled   OrderStatus = "Canceled"
)

var orderStatuses = []OrderStatus{StatusOpen, StatusClosed, StatusInProgress, StatusCanceled}

// ParseOrderStatus maps a free-text label to an OrderStatus by exact match
// against each member's description. No fuzzy or case-insensitive matching.
func ParseOrderStatus(description string) (OrderStatus, error) {
	for _, s := range orderStatuses {
		if string(s) == description {
			return s, nil
		}
	}
	return "", ErrInvalidOrderStatus
}

// Order is a helpdesk support order raised by a requester on behalf of a
// customer.
type Order struct {
	ID          int64       `json:"id"`
	RequesterID string      `json:"requester_id"`
	CustomerID  string      `json:"customer_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ClosedAt    *time.Time  `json:"closed_at,omitempty"`
}
