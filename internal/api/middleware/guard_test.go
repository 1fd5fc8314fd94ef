package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/domain"
)

func guardContext(e *echo.Echo, s domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, s)
	return c, rec
}

func TestGuard_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, domain.Session{Principal: &domain.Principal{
		ID: "u1", Role: domain.RoleAdmin,
	}})

	called := false
	mw := Guard(domain.NewAccessRule(domain.RoleAdmin, domain.RoleCustomer))
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, domain.AnonymousSession())

	mw := Guard(domain.NewAccessRule(domain.RoleCustomer))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathLogin {
		t.Fatalf("expected redirect to %s, got %s", domain.PathLogin, loc)
	}
}

func TestGuard_WrongRoleRedirectsToOwnHome(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, domain.Session{Principal: &domain.Principal{
		ID: "v1", Role: domain.RoleVideographer,
	}})

	mw := Guard(domain.NewAccessRule(domain.RoleCustomer))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathVideographerHome {
		t.Fatalf("expected redirect to %s, got %s", domain.PathVideographerHome, loc)
	}
}

func TestGuard_UnknownRoleRedirectsToLanding(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, domain.Session{Principal: &domain.Principal{
		ID: "x1", Role: domain.Role("superuser"),
	}})

	mw := Guard(domain.NewAccessRule(domain.RoleAdmin))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathLanding {
		t.Fatalf("unrecognized role must land on %s, got %s", domain.PathLanding, loc)
	}
}

func TestGuard_HydratingIsUnavailable(t *testing.T) {
	e := echo.New()
	c, _ := guardContext(e, domain.HydratingSession())

	mw := Guard(domain.NewAccessRule(domain.RoleCustomer))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error for hydrating session")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %v", err)
	}
}

func TestGuard_MissingSessionFailsClosed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// No session middleware ran; the guard must treat this as anonymous.

	mw := Guard(domain.NewAccessRule(domain.RoleAdmin))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}
