package handler

import "github.com/northbound/studio-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type signupRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	Role        string `json:"role"         validate:"required,oneof=customer videographer admin"`
	CompanyName string `json:"company_name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the bearer token plus the principal exactly as it is
// persisted in the session slot.
type authResponse struct {
	Token     string            `json:"token"`
	Principal *domain.Principal `json:"principal"`
}

// sessionResponse reports the resolved session for the caller's token.
type sessionResponse struct {
	State     string            `json:"state"`
	Principal *domain.Principal `json:"principal,omitempty"`
}
