package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/api/metrics"
	"github.com/northbound/studio-api/internal/api/middleware"
	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// AuthHandler handles signup, login, logout, and session resolution.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Signup creates an account and opens a session for it.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, principal, err := h.sessions.Signup(c.Request().Context(), ports.SignupInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(principal.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, Principal: principal})
}

// Login verifies credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, principal, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, Principal: principal})
}

// Logout clears the caller's session slot. Always succeeds, even for
// anonymous callers: logging out of nothing is a no-op.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session cleared"
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SessionIDFromContext(c); sid != "" {
		_ = h.sessions.Logout(c.Request().Context(), sid)
	}
	return c.NoContent(http.StatusNoContent)
}

// Session resolves the caller's token to its current session. Anonymous and
// authenticated callers both get a 200: the client uses the state field to
// decide where to route.
//
// @Summary      Resolve the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	s := middleware.SessionFromContext(c)
	return c.JSON(http.StatusOK, sessionResponse{
		State:     s.State().String(),
		Principal: s.Principal,
	})
}
