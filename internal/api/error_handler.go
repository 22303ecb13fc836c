package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

// fieldErrorResponse is a single field/message pair attached to validation
// failures.
type fieldErrorResponse struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// standardError is the canonical error envelope for all API errors.
type standardError struct {
	Timestamp time.Time            `json:"timestamp"`
	Status    int                  `json:"status"`
	Error     string               `json:"error"`
	Message   string               `json:"message"`
	Path      string               `json:"path"`
	Errors    []fieldErrorResponse `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with the per-field error list.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, title, msg, fields := resolveError(err, log, c)
		_ = c.JSON(code, standardError{
			Timestamp: time.Now().UTC(),
			Status:    code,
			Error:     title,
			Message:   msg,
			Path:      c.Request().URL.Path,
			Errors:    fields,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string, []fieldErrorResponse) {
	// Validation failures carry per-field detail.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make([]fieldErrorResponse, len(ve.Fields))
		for i, f := range ve.Fields {
			fields[i] = fieldErrorResponse{FieldName: f.FieldName, Message: f.Message}
		}
		return http.StatusBadRequest, "Validation error", "Exception in validation attributes", fields
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Resource not found", "user not found", nil
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Resource not found", "order not found", nil
	case errors.Is(err, domain.ErrRefreshTokenNotFound):
		return http.StatusNotFound, "Resource not found", "refresh token not found", nil
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Conflict", "email already registered", nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized", "invalid credentials", nil
	case errors.Is(err, domain.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "Unauthorized", "refresh token expired", nil
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many requests", "too many failed login attempts, retry later", nil
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		return http.StatusBadRequest, "Bad request", "invalid order status description", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", "internal server error", nil
}
