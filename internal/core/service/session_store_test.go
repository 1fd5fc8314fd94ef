package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// stubSlotRepo keeps session slots as raw JSON, like the real Redis store.
type stubSlotRepo struct {
	slots   map[string][]byte
	ttls    map[string]time.Duration
	loads   int
	loadErr error
}

func newStubSlotRepo() *stubSlotRepo {
	return &stubSlotRepo{slots: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (r *stubSlotRepo) Load(_ context.Context, sid string) (*domain.Principal, error) {
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	raw, ok := r.slots[sid]
	if !ok {
		return nil, nil
	}
	var p domain.Principal
	if err := json.Unmarshal(raw, &p); err != nil || p.ID == "" {
		return nil, domain.ErrSessionCorrupt
	}
	return &p, nil
}

func (r *stubSlotRepo) Save(_ context.Context, sid string, p *domain.Principal, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.slots[sid] = raw
	r.ttls[sid] = ttl
	return nil
}

func (r *stubSlotRepo) Delete(_ context.Context, sid string) error {
	delete(r.slots, sid)
	return nil
}

type stubRecorder struct {
	events []domain.AuditEvent
}

func (r *stubRecorder) Record(event domain.AuditEvent) {
	r.events = append(r.events, event)
}

func newTestStore() (*SessionStore, *stubUserRepo, *stubSlotRepo, *stubRecorder) {
	users := newStubUserRepo()
	slots := newStubSlotRepo()
	audit := &stubRecorder{}
	store := NewSessionStore(users, slots, audit, "secret", time.Hour, zerolog.Nop())
	return store, users, slots, audit
}

func signupInput(role string) ports.SignupInput {
	return ports.SignupInput{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "s3cret-pass",
		Role:        role,
	}
}

func tokenSID(t *testing.T, token string) string {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("token missing sid claim")
	}
	return sid
}

func TestSessionStore_Signup_OpensSession(t *testing.T) {
	store, _, slots, audit := newTestStore()

	token, principal, err := store.Signup(context.Background(), signupInput("videographer"))
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if principal.Role != domain.RoleVideographer {
		t.Fatalf("expected signup role to stick, got %s", principal.Role)
	}

	sid := tokenSID(t, token)
	raw, ok := slots.slots[sid]
	if !ok {
		t.Fatalf("slot not persisted for sid %s", sid)
	}

	// The slot holds the principal as plain JSON.
	var stored domain.Principal
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("slot is not valid JSON: %v", err)
	}
	if stored != *principal {
		t.Fatalf("stored principal %+v != returned %+v", stored, *principal)
	}

	// Slot and token expire together.
	if slots.ttls[sid] != time.Hour {
		t.Fatalf("expected slot ttl to equal token ttl, got %v", slots.ttls[sid])
	}

	if len(audit.events) != 1 || audit.events[0].EventType != domain.AuditEventAuth {
		t.Fatalf("expected one auth audit event, got %+v", audit.events)
	}
}

func TestSessionStore_Signup_Validation(t *testing.T) {
	store, _, _, _ := newTestStore()

	cases := []ports.SignupInput{
		{},
		{DisplayName: "A", Email: "a@b.co", Password: "", Role: "customer"},
		{DisplayName: "A", Email: "", Password: "pass", Role: "customer"},
		signupInput("superuser"),
		signupInput(""),
	}
	for i, in := range cases {
		if _, _, err := store.Signup(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestSessionStore_Signup_Duplicate(t *testing.T) {
	store, _, _, _ := newTestStore()

	if _, _, err := store.Signup(context.Background(), signupInput("customer")); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, _, err := store.Signup(context.Background(), signupInput("customer")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestSessionStore_Login_RoleComesFromAccount(t *testing.T) {
	store, _, _, _ := newTestStore()

	if _, _, err := store.Signup(context.Background(), signupInput("videographer")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, principal, err := store.Login(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if principal.Role != domain.RoleVideographer {
		t.Fatalf("role must come from the stored account, got %s", principal.Role)
	}
	if token == "" {
		t.Fatalf("expected a bearer token")
	}
}

func TestSessionStore_Login_BadCredentials(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	if _, _, err := store.Signup(ctx, signupInput("customer")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := store.Login(ctx, "alice@example.com", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	// Unknown accounts are indistinguishable from bad passwords.
	if _, _, err := store.Login(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := store.Login(ctx, "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty input: expected ErrValidation, got %v", err)
	}
}

func TestSessionStore_Logout_ClearsSlot(t *testing.T) {
	store, _, slots, _ := newTestStore()
	ctx := context.Background()

	token, _, err := store.Signup(ctx, signupInput("customer"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	sid := tokenSID(t, token)

	if err := store.Logout(ctx, sid); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := slots.slots[sid]; ok {
		t.Fatalf("slot still present after logout")
	}
	if s := store.Hydrate(ctx, sid); s.Principal != nil {
		t.Fatalf("hydrate after logout must be anonymous, got %+v", s.Principal)
	}

	// Logging out again, or with no session at all, still succeeds.
	if err := store.Logout(ctx, sid); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if err := store.Logout(ctx, ""); err != nil {
		t.Fatalf("empty sid logout: %v", err)
	}
}

func TestSessionStore_Hydrate(t *testing.T) {
	store, _, slots, _ := newTestStore()
	ctx := context.Background()

	token, principal, err := store.Signup(ctx, signupInput("admin"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	sid := tokenSID(t, token)

	s := store.Hydrate(ctx, sid)
	if s.Hydrating {
		t.Fatalf("hydrate must never return a hydrating session")
	}
	if s.Principal == nil || *s.Principal != *principal {
		t.Fatalf("expected principal %+v, got %+v", principal, s.Principal)
	}
	if slots.loads != 1 {
		t.Fatalf("expected exactly one slot read, got %d", slots.loads)
	}

	// Hydrating again resolves the same principal.
	again := store.Hydrate(ctx, sid)
	if again.Principal == nil || *again.Principal != *s.Principal {
		t.Fatalf("second hydrate diverged: %+v vs %+v", again.Principal, s.Principal)
	}
}

func TestSessionStore_Hydrate_Anonymous(t *testing.T) {
	store, _, slots, _ := newTestStore()
	ctx := context.Background()

	// Empty sid.
	if s := store.Hydrate(ctx, ""); s.Principal != nil || s.Hydrating {
		t.Fatalf("empty sid: expected anonymous, got %+v", s)
	}

	// No slot.
	if s := store.Hydrate(ctx, "missing"); s.Principal != nil {
		t.Fatalf("absent slot: expected anonymous")
	}

	// Corrupt slot contents.
	slots.slots["bad"] = []byte("{not json")
	if s := store.Hydrate(ctx, "bad"); s.Principal != nil {
		t.Fatalf("corrupt slot: expected anonymous")
	}

	// Slot decodes but carries a role outside the enumeration.
	slots.slots["weird"], _ = json.Marshal(domain.Principal{
		ID: "u9", Email: "x@y.co", DisplayName: "X", Role: domain.Role("root"),
	})
	if s := store.Hydrate(ctx, "weird"); s.Principal != nil {
		t.Fatalf("invalid role in slot: expected anonymous")
	}

	// Backing store failure.
	slots.loadErr = errors.New("connection refused")
	if s := store.Hydrate(ctx, "any"); s.Principal != nil || s.Hydrating {
		t.Fatalf("slot read failure: expected anonymous, got %+v", s)
	}
}
