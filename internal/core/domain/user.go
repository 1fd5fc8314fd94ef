package domain

import (
	"errors"
	"time"
)

// Role determines which dashboard a principal may access.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleVideographer Role = "videographer"
	RoleAdmin        Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role string. Unknown values are rejected so that
// authorization decisions built on the result always fail closed.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleVideographer, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidation         = errors.New("missing or malformed input")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an account in the backing store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CompanyName  string    `json:"companyName,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal returns the session-facing view of the account.
func (u *User) Principal() Principal {
	return Principal{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}
