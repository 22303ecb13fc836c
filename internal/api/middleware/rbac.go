package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control against the authorities claim
// injected by Auth. The request passes when any granted profile is allowed.
func RBAC(allowedProfiles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedProfiles))
	for _, p := range allowedProfiles {
		allowed[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get("authorities").([]string)
			for _, p := range granted {
				if _, ok := allowed[p]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
