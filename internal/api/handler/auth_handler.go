package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/romulogoncalves94/help-desk/internal/api/metrics"
	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/ports"
)

// AuthHandler handles login and token refresh.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a JWT plus a refresh token id.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  api.standardError
// @Failure      401   {object}  api.standardError
// @Failure      429   {object}  api.standardError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Type:         result.Type,
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
	})
}

// Refresh exchanges a refresh token id for a new JWT and a rotated id.
//
// @Summary      Refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshTokenRequest  true  "Refresh token id"
// @Success      200   {object}  refreshTokenResponse
// @Failure      400   {object}  api.standardError
// @Failure      401   {object}  api.standardError
// @Failure      404   {object}  api.standardError
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues(refreshResult(err)).Inc()
		return err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, refreshTokenResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	}
	return "error"
}

func refreshResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrRefreshTokenNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRefreshTokenExpired):
		return "expired"
	}
	return "error"
}
