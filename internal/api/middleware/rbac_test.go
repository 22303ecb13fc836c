package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, granted []string, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if granted != nil {
		c.Set("authorities", granted)
	}

	next := func(c echo.Context) error { return nil }
	return RBAC(allowed...)(next)(c)
}

func TestRBAC_AllowsMatchingProfile(t *testing.T) {
	if err := runRBAC(t, []string{"ROLE_CUSTOMER", "ROLE_ADMIN"}, "ROLE_ADMIN"); err != nil {
		t.Fatalf("expected access, got %v", err)
	}
}

func TestRBAC_ForbidsWithoutMatch(t *testing.T) {
	err := runRBAC(t, []string{"ROLE_CUSTOMER"}, "ROLE_ADMIN")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_ForbidsWhenNoAuthorities(t *testing.T) {
	err := runRBAC(t, nil, "ROLE_ADMIN")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
