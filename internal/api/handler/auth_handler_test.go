package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/api/middleware"
	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type stubSessionService struct {
	signupFn  func(ctx context.Context, in ports.SignupInput) (string, *domain.Principal, error)
	loginFn   func(ctx context.Context, email, password string) (string, *domain.Principal, error)
	logoutFn  func(ctx context.Context, sid string) error
	hydrateFn func(ctx context.Context, sid string) domain.Session
}

func (s *stubSessionService) Signup(ctx context.Context, in ports.SignupInput) (string, *domain.Principal, error) {
	return s.signupFn(ctx, in)
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Logout(ctx context.Context, sid string) error {
	return s.logoutFn(ctx, sid)
}

func (s *stubSessionService) Hydrate(ctx context.Context, sid string) domain.Session {
	return s.hydrateFn(ctx, sid)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signupFn: func(_ context.Context, in ports.SignupInput) (string, *domain.Principal, error) {
			if in.Email != "alice@example.com" || in.Role != "customer" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "token123", &domain.Principal{
				ID: "u1", Email: in.Email, DisplayName: in.DisplayName, Role: domain.RoleCustomer,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"display_name":"Alice","email":"alice@example.com","password":"longenough","role":"customer"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	principal, ok := resp["principal"].(map[string]any)
	if !ok || principal["role"] != "customer" {
		t.Fatalf("unexpected principal payload: %+v", resp)
	}
}

func TestAuthHandler_Signup_RejectsUnknownRole(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signupFn: func(context.Context, ports.SignupInput) (string, *domain.Principal, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"display_name":"Eve","email":"eve@example.com","password":"longenough","role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubSessionService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_UserExists(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signupFn: func(context.Context, ports.SignupInput) (string, *domain.Principal, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"display_name":"Bob","email":"bob@example.com","password":"longenough","role":"customer"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The central error handler maps this to 409; the handler just passes it through.
	if err := handler.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Principal, error) {
			if email != "alice@example.com" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Principal{ID: "u1", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (string, *domain.Principal, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	var loggedOut string
	stub := &stubSessionService{
		logoutFn: func(_ context.Context, sid string) error {
			loggedOut = sid
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionIDKey, "sid-1")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if loggedOut != "sid-1" {
		t.Fatalf("expected logout of sid-1, got %q", loggedOut)
	}
}

func TestAuthHandler_Logout_AnonymousIsNoop(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		logoutFn: func(context.Context, string) error {
			t.Fatalf("no logout expected without a session")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, domain.Session{Principal: &domain.Principal{
		ID: "u1", Email: "a@b.co", DisplayName: "Alice", Role: domain.RoleCustomer,
	}})

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["state"] != "authenticated" {
		t.Fatalf("expected authenticated state, got %+v", resp)
	}

	// Anonymous callers still get a 200 with no principal.
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil), rec2)
	if err := handler.Session(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp = nil
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["state"] != "anonymous" {
		t.Fatalf("expected anonymous state, got %+v", resp)
	}
	if _, ok := resp["principal"]; ok {
		t.Fatalf("anonymous session must omit principal")
	}
}
