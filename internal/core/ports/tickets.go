package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// TicketFilter carries repository-level query parameters for tickets.
type TicketFilter struct {
	SubmitterUserID         string
	SubmitterVideographerID string
	Status                  string
}

// TicketRepository defines persistence operations for support tickets.
type TicketRepository interface {
	Insert(ctx context.Context, t *domain.SupportTicket) error
	FindByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	List(ctx context.Context, filter TicketFilter) ([]*domain.SupportTicket, error)
	Update(ctx context.Context, t *domain.SupportTicket) error
}

// CreateTicketInput carries a new support request.
type CreateTicketInput struct {
	Subject       string
	Description   string
	Category      string
	Priority      string
	AttachmentURL string
	Role          domain.Role
	ActorID       string
}

// TicketService defines use-case operations for support tickets.
type TicketService interface {
	Create(ctx context.Context, in CreateTicketInput) (*domain.SupportTicket, error)
	// List scopes results by role: customers and videographers see their own
	// tickets, admins see everything (optionally filtered by status).
	List(ctx context.Context, role domain.Role, actorID, status string) ([]*domain.SupportTicket, error)
	Assign(ctx context.Context, ticketID, adminID string) error
	SetStatus(ctx context.Context, ticketID string, next domain.TicketStatus, adminID string) error
}
