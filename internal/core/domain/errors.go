package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrOrderNotFound        = errors.New("order not found")
)

// FieldError describes a single failed constraint on a request field.
type FieldError struct {
	FieldName string
	Message   string
}

// ValidationError aggregates every failed constraint of a request so the API
// layer can render them all in one response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
