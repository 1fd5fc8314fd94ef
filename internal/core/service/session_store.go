package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// SessionStore implements signup, login, logout, and session hydration. It
// owns the persisted session slot: every transition between no-session and
// active-session goes through here.
type SessionStore struct {
	users     ports.UserRepository
	slots     ports.SessionRepository
	audit     ports.AuditRecorder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewSessionStore(
	users ports.UserRepository,
	slots ports.SessionRepository,
	audit ports.AuditRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *SessionStore {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionStore{
		users:     users,
		slots:     slots,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Signup creates an account with the exact role supplied by the caller and
// opens a session for it.
func (s *SessionStore) Signup(ctx context.Context, in ports.SignupInput) (string, *domain.Principal, error) {
	if in.DisplayName == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrValidation
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return "", nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		Role:         role,
		CompanyName:  in.CompanyName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	principal := created.Principal()
	token, err := s.openSession(ctx, &principal)
	if err != nil {
		return "", nil, err
	}

	s.recordAuth(principal.ID, "signup", principal.Email)
	return token, &principal, nil
}

// Login verifies the password against the stored account and opens a session.
// The principal's role comes from the account record, never from the input.
func (s *SessionStore) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	principal := user.Principal()
	token, err := s.openSession(ctx, &principal)
	if err != nil {
		return "", nil, err
	}

	s.recordAuth(principal.ID, "login", principal.Email)
	return token, &principal, nil
}

// Logout clears the persisted slot. Storage errors are logged and swallowed:
// from the caller's point of view logout always succeeds, and the guard fails
// closed regardless.
func (s *SessionStore) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.slots.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete session slot")
	}
	s.recordAuth("", "logout", "")
	return nil
}

// Hydrate loads the session for sid with exactly one slot read. An absent,
// corrupt, or unreadable slot yields an anonymous session; an error never
// escapes to the guard. The returned session is always past hydration.
func (s *SessionStore) Hydrate(ctx context.Context, sid string) domain.Session {
	if sid == "" {
		return domain.AnonymousSession()
	}

	principal, err := s.slots.Load(ctx, sid)
	if err != nil {
		if errors.Is(err, domain.ErrSessionCorrupt) {
			s.log.Warn().Str("sid", sid).Msg("corrupt session slot, treating as anonymous")
		} else {
			s.log.Warn().Err(err).Msg("session slot read failed, treating as anonymous")
		}
		return domain.AnonymousSession()
	}
	if principal == nil || !principal.Role.Valid() {
		return domain.AnonymousSession()
	}

	return domain.Session{Principal: principal}
}

// openSession persists the slot and issues the matching bearer token. The
// slot TTL equals the token TTL so both expire together.
func (s *SessionStore) openSession(ctx context.Context, p *domain.Principal) (string, error) {
	sid := uuid.NewString()
	if err := s.slots.Save(ctx, sid, p, s.tokenTTL); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":   sid,
		"sub":   p.ID,
		"email": p.Email,
		"name":  p.DisplayName,
		"role":  string(p.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *SessionStore) recordAuth(actorID, action, email string) {
	if s.audit == nil {
		return
	}
	details := map[string]any{"action": action}
	if email != "" {
		details["email"] = email
	}
	s.audit.Record(domain.AuditEvent{
		EventType: domain.AuditEventAuth,
		Details:   details,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
