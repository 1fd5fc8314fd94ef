package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type TicketService struct {
	repo ports.TicketRepository
	log  zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, log zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, log: log}
}

// Create opens a support ticket attributed to the submitter's role.
func (s *TicketService) Create(ctx context.Context, in ports.CreateTicketInput) (*domain.SupportTicket, error) {
	if in.Subject == "" || in.Description == "" || in.ActorID == "" {
		return nil, domain.ErrValidation
	}
	category, err := domain.ParseTicketCategory(in.Category)
	if err != nil {
		return nil, err
	}
	priority := domain.TicketPriorityNormal
	if in.Priority != "" {
		if priority, err = domain.ParseTicketPriority(in.Priority); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	ticket := &domain.SupportTicket{
		ID:            uuid.NewString(),
		Subject:       in.Subject,
		Description:   in.Description,
		Category:      category,
		Priority:      priority,
		Status:        domain.TicketOpen,
		AttachmentURL: in.AttachmentURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	switch in.Role {
	case domain.RoleVideographer:
		ticket.SubmittedByVideographerID = in.ActorID
	default:
		ticket.SubmittedByUserID = in.ActorID
	}

	if err := s.repo.Insert(ctx, ticket); err != nil {
		s.log.Error().Err(err).Msg("failed to create ticket")
		return nil, err
	}

	s.log.Info().Str("ticket_id", ticket.ID).Str("category", string(category)).Msg("support ticket opened")
	return ticket, nil
}

// List scopes results by role: customers and videographers see their own
// tickets, admins see everything with an optional status filter.
func (s *TicketService) List(ctx context.Context, role domain.Role, actorID, status string) ([]*domain.SupportTicket, error) {
	filter := ports.TicketFilter{Status: status}
	switch role {
	case domain.RoleCustomer:
		filter.SubmitterUserID = actorID
	case domain.RoleVideographer:
		filter.SubmitterVideographerID = actorID
	case domain.RoleAdmin:
		// unscoped
	default:
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, filter)
}

// Assign records the admin handling the ticket and moves it in progress.
func (s *TicketService) Assign(ctx context.Context, ticketID, adminID string) error {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}

	ticket.AssignedAdminID = adminID
	if ticket.Status == domain.TicketOpen {
		ticket.Status = domain.TicketInProgress
	}
	ticket.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, ticket)
}

// SetStatus applies a validated status transition.
func (s *TicketService) SetStatus(ctx context.Context, ticketID string, next domain.TicketStatus, adminID string) error {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if !ticket.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	ticket.Status = next
	ticket.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, ticket)
}
