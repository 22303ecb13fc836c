package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, standardError) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body standardError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "Resource not found"},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound, "Resource not found"},
		{"refresh token not found", domain.ErrRefreshTokenNotFound, http.StatusNotFound, "Resource not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "Conflict"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Unauthorized"},
		{"refresh token expired", domain.ErrRefreshTokenExpired, http.StatusUnauthorized, "Unauthorized"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many requests"},
		{"invalid order status", domain.ErrInvalidOrderStatus, http.StatusBadRequest, "Bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			if code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, code)
			}
			if body.Status != tt.wantStatus {
				t.Fatalf("expected envelope status %d, got %d", tt.wantStatus, body.Status)
			}
			if body.Error != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, body.Error)
			}
			if body.Path != "/api/test" {
				t.Fatalf("expected path to be echoed, got %q", body.Path)
			}
			if body.Timestamp.IsZero() {
				t.Fatalf("expected a timestamp")
			}
			if len(body.Errors) != 0 {
				t.Fatalf("expected no field errors, got %+v", body.Errors)
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := &domain.ValidationError{Fields: []domain.FieldError{
		{FieldName: "email", Message: "email must be a valid email"},
		{FieldName: "password", Message: "password must be at least 6 characters"},
	}}

	code, body := renderError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body.Error != "Validation error" || body.Message != "Exception in validation attributes" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected two field errors, got %+v", body.Errors)
	}
	if body.Errors[0].FieldName != "email" || body.Errors[1].FieldName != "password" {
		t.Fatalf("expected field order preserved, got %+v", body.Errors)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body.Message != "missing authorization header" {
		t.Fatalf("expected message to pass through, got %q", body.Message)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("pgx: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", body.Message)
	}
}
