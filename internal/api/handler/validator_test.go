package handler

import (
	"errors"
	"testing"

	"github.com/romulogoncalves94/help-desk/internal/core/domain"
)

func TestValidator_UsesJSONTagNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createOrderRequest{
		RequesterID: "short",
		CustomerID:  "64bb3bbe319d2b6e45dd23de",
		Title:       "Printer offline",
		Description: "Office printer rejects every job",
		Status:      "Open",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 {
		t.Fatalf("expected one field error, got %+v", ve.Fields)
	}
	if ve.Fields[0].FieldName != "requesterId" {
		t.Fatalf("expected json tag name requesterId, got %q", ve.Fields[0].FieldName)
	}
}

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{Name: "Al", Email: "nope", Password: "123"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected three field errors, got %+v", ve.Fields)
	}
	for _, f := range ve.Fields {
		if f.Message == "" {
			t.Fatalf("expected a message for %s", f.FieldName)
		}
	}
}

func TestValidator_ValidInputPasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}
