package domain

import "errors"

// ErrSessionCorrupt marks a persisted session slot whose contents cannot be
// decoded into a valid Principal. Callers must treat it as "no session".
var ErrSessionCorrupt = errors.New("session slot corrupt")

// Principal is the authenticated actor attached to a session. This is the
// exact shape persisted in the session slot (UTF-8 JSON).
type Principal struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// Session wraps zero-or-one Principal plus the hydration flag. Hydrating is
// true only before the first load from the session slot completes.
type Session struct {
	Principal *Principal
	Hydrating bool
}

// SessionState is the session store's lifecycle state.
type SessionState int

const (
	SessionHydrating SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionHydrating:
		return "hydrating"
	case SessionAnonymous:
		return "anonymous"
	default:
		return "authenticated"
	}
}

// State reports the current lifecycle state of the session.
func (s Session) State() SessionState {
	switch {
	case s.Hydrating:
		return SessionHydrating
	case s.Principal == nil:
		return SessionAnonymous
	default:
		return SessionAuthenticated
	}
}

// AnonymousSession returns a fully hydrated session with no principal.
func AnonymousSession() Session {
	return Session{}
}

// HydratingSession returns the session as seen before the slot read completes.
func HydratingSession() Session {
	return Session{Hydrating: true}
}
