package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type PayoutService struct {
	repo  ports.PayoutRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewPayoutService(repo ports.PayoutRepository, audit ports.AuditRecorder, log zerolog.Logger) *PayoutService {
	return &PayoutService{repo: repo, audit: audit, log: log}
}

// Create opens a pending payout for an accepted submission.
func (s *PayoutService) Create(ctx context.Context, in ports.CreatePayoutInput) (*domain.Payout, error) {
	if in.VideographerID == "" || in.ProjectID == "" || in.AmountUSD <= 0 {
		return nil, domain.ErrValidation
	}

	payout := &domain.Payout{
		ID:             uuid.NewString(),
		VideographerID: in.VideographerID,
		ProjectID:      in.ProjectID,
		AssignmentID:   in.AssignmentID,
		AmountUSD:      in.AmountUSD,
		PaymentMethod:  in.PaymentMethod,
		Status:         domain.PayoutPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, payout); err != nil {
		s.log.Error().Err(err).Str("videographer_id", in.VideographerID).Msg("failed to create payout")
		return nil, err
	}
	return payout, nil
}

// Approve moves a pending payout to approved, recording the approver.
func (s *PayoutService) Approve(ctx context.Context, payoutID, adminID string) (*domain.Payout, error) {
	payout, err := s.repo.FindByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if !payout.Status.CanTransitionTo(domain.PayoutApproved) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	payout.Status = domain.PayoutApproved
	payout.AdminApprovedBy = adminID
	payout.ApprovedAt = &now

	if err := s.repo.Update(ctx, payout); err != nil {
		return nil, err
	}

	s.record(adminID, "payout_approved", payout)
	return payout, nil
}

// MarkPaid settles an approved payout. A transaction id is generated when
// none is supplied.
func (s *PayoutService) MarkPaid(ctx context.Context, payoutID, adminID, transactionID string) (*domain.Payout, error) {
	payout, err := s.repo.FindByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if !payout.Status.CanTransitionTo(domain.PayoutPaid) {
		return nil, domain.ErrInvalidTransition
	}

	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	now := time.Now().UTC()
	payout.Status = domain.PayoutPaid
	payout.PaidAt = &now
	payout.TransactionID = transactionID

	if err := s.repo.Update(ctx, payout); err != nil {
		return nil, err
	}

	s.record(adminID, "payout_paid", payout)
	return payout, nil
}

func (s *PayoutService) ListForVideographer(ctx context.Context, videographerID string) ([]*domain.Payout, error) {
	return s.repo.ListByVideographer(ctx, videographerID)
}

func (s *PayoutService) ListAll(ctx context.Context, status string) ([]*domain.Payout, error) {
	return s.repo.ListAll(ctx, status)
}

func (s *PayoutService) record(adminID, action string, payout *domain.Payout) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		EventType: domain.AuditEventBilling,
		Details: map[string]any{
			"action":          action,
			"payout_id":       payout.ID,
			"videographer_id": payout.VideographerID,
			"amount_usd":      payout.AmountUSD,
		},
		ActorID:   adminID,
		Timestamp: time.Now().UTC(),
	})
}
