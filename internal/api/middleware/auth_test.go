package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// stubSessionService returns a canned session for one known sid.
type stubSessionService struct {
	knownSID string
	session  domain.Session
	hydrated []string
}

func (s *stubSessionService) Signup(context.Context, ports.SignupInput) (string, *domain.Principal, error) {
	return "", nil, nil
}

func (s *stubSessionService) Login(context.Context, string, string) (string, *domain.Principal, error) {
	return "", nil, nil
}

func (s *stubSessionService) Logout(context.Context, string) error { return nil }

func (s *stubSessionService) Hydrate(_ context.Context, sid string) domain.Session {
	s.hydrated = append(s.hydrated, sid)
	if sid == s.knownSID {
		return s.session
	}
	return domain.AnonymousSession()
}

func signToken(t *testing.T, secret, sid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	svc := &stubSessionService{
		knownSID: "sid-1",
		session: domain.Session{Principal: &domain.Principal{
			ID: "u1", Email: "a@b.co", DisplayName: "Alice", Role: domain.RoleAdmin,
		}},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(svc, "secret")
	handler := mw(func(c echo.Context) error {
		called = true
		s := SessionFromContext(c)
		if s.Principal == nil || s.Principal.ID != "u1" {
			t.Fatalf("principal not set: %+v", s)
		}
		if got := SessionIDFromContext(c); got != "sid-1" {
			t.Fatalf("expected sid-1, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(svc.hydrated) != 1 {
		t.Fatalf("expected one hydrate call, got %d", len(svc.hydrated))
	}
}

func TestSessionMiddleware_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	svc := &stubSessionService{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(svc, "secret")
	handler := mw(func(c echo.Context) error {
		called = true
		s := SessionFromContext(c)
		if s.Principal != nil || s.Hydrating {
			t.Fatalf("expected anonymous session, got %+v", s)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous caller must still reach next")
	}
	if len(svc.hydrated) != 0 {
		t.Fatalf("no hydrate expected without a token")
	}
}

func TestSessionMiddleware_BadTokenIsAnonymous(t *testing.T) {
	for name, header := range map[string]string{
		"wrong scheme":    "Token abc",
		"garbage token":   "Bearer not-a-token",
		"wrong signature": "Bearer " + func() string { tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": "sid-1"}).SignedString([]byte("other")); return tok }(),
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			svc := &stubSessionService{}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Session(svc, "secret")
			handler := mw(func(c echo.Context) error {
				if s := SessionFromContext(c); s.Principal != nil {
					t.Fatalf("expected anonymous session")
				}
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		})
	}
}

func TestSessionMiddleware_TokenWithoutSIDIsAnonymous(t *testing.T) {
	e := echo.New()
	svc := &stubSessionService{}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(svc, "secret")
	handler := mw(func(c echo.Context) error {
		if s := SessionFromContext(c); s.Principal != nil {
			t.Fatalf("expected anonymous session")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(svc.hydrated) != 0 {
		t.Fatalf("no hydrate expected without a sid claim")
	}
}
