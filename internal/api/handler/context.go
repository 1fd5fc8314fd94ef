package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/api/middleware"
	"github.com/northbound/studio-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Session middleware and
// performs a fast-fail check before any service call. On guarded routes the
// principal is always present; a missing one means the route was wired
// without the middleware — reject with 401 rather than panic.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	s := middleware.SessionFromContext(c)
	if s.Principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session principal")
	}
	return s.Principal, nil
}
