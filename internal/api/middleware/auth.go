package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// Context keys set by Session and read by Guard and the handlers.
const (
	SessionKey   = "session"
	SessionIDKey = "session_id"
)

// Session resolves the caller's session and injects it into context. A
// missing, malformed, or expired bearer token yields an anonymous session
// rather than an error: whether the request may proceed is Guard's call.
func Session(sessions ports.SessionService, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := sessionID(c, jwtSecret)
			if !ok {
				c.Set(SessionKey, domain.AnonymousSession())
				return next(c)
			}

			c.Set(SessionIDKey, sid)
			c.Set(SessionKey, sessions.Hydrate(c.Request().Context(), sid))
			return next(c)
		}
	}
}

// sessionID extracts the session id claim from the bearer token, if any.
func sessionID(c echo.Context, jwtSecret string) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

// SessionFromContext returns the session stashed by the Session middleware.
// Requests that bypassed the middleware read as anonymous.
func SessionFromContext(c echo.Context) domain.Session {
	s, ok := c.Get(SessionKey).(domain.Session)
	if !ok {
		return domain.AnonymousSession()
	}
	return s
}

// SessionIDFromContext returns the session id, or "" for anonymous callers.
func SessionIDFromContext(c echo.Context) string {
	sid, _ := c.Get(SessionIDKey).(string)
	return sid
}
