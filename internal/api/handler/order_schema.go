package handler

import "time"

type createOrderRequest struct {
	RequesterID string `json:"requesterId" validate:"required,min=24,max=36"`
	CustomerID  string `json:"customerId"  validate:"required,min=24,max=36"`
	Title       string `json:"title"       validate:"required,min=3,max=45"`
	Description string `json:"description" validate:"required,min=10,max=3000"`
	Status      string `json:"status"      validate:"required,min=4,max=15"`
}

type orderResponse struct {
	ID          int64      `json:"id"`
	RequesterID string     `json:"requesterId"`
	CustomerID  string     `json:"customerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}
