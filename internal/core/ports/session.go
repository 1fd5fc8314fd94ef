package ports

import (
	"context"
	"time"

	"github.com/northbound/studio-api/internal/core/domain"
)

// SessionRepository persists the session slot: a single key-value entry per
// session id holding the serialized Principal.
type SessionRepository interface {
	// Load reads the persisted slot. It returns (nil, nil) when the slot is
	// absent and domain.ErrSessionCorrupt when present but undecodable.
	Load(ctx context.Context, sid string) (*domain.Principal, error)
	Save(ctx context.Context, sid string, p *domain.Principal, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	DisplayName string
	Email       string
	Password    string
	Role        string
	CompanyName string
}

// SessionService owns the current principal and mediates every transition
// between no-session, hydrating, and active-session states.
type SessionService interface {
	// Signup creates an account with the exact role supplied by the caller
	// and opens a session for it. Returns the bearer token and principal.
	Signup(ctx context.Context, in SignupInput) (string, *domain.Principal, error)
	// Login verifies credentials against the stored account and opens a
	// session. Returns the bearer token and principal.
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
	// Logout clears the persisted slot. It never fails from the caller's
	// point of view.
	Logout(ctx context.Context, sid string) error
	// Hydrate loads the session for sid. Absent, corrupt, or unreadable
	// slots all yield an anonymous session; the returned session is never
	// hydrating.
	Hydrate(ctx context.Context, sid string) domain.Session
}
