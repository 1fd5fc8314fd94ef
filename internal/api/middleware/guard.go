package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/api/metrics"
	"github.com/northbound/studio-api/internal/core/domain"
)

// Guard protects a route group with an access rule. The decision comes from
// domain.EvaluateAccess; this middleware only translates it to HTTP:
//
//   - Allow → next handler.
//   - RedirectToLogin / RedirectToRoleHome → 303 See Other.
//   - Pending → 503, the session could not be resolved yet.
func Guard(rule domain.AccessRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := domain.EvaluateAccess(SessionFromContext(c), rule)
			metrics.GuardDecisionsTotal.WithLabelValues(decision.Action.String()).Inc()

			switch decision.Action {
			case domain.AccessAllow:
				return next(c)
			case domain.AccessRedirectToLogin, domain.AccessRedirectToRoleHome:
				return c.Redirect(http.StatusSeeOther, decision.Location)
			default:
				c.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session not ready")
			}
		}
	}
}
