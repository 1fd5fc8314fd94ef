package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// PayoutRepository defines persistence operations for payouts.
type PayoutRepository interface {
	Insert(ctx context.Context, p *domain.Payout) error
	FindByID(ctx context.Context, id string) (*domain.Payout, error)
	Update(ctx context.Context, p *domain.Payout) error
	ListByVideographer(ctx context.Context, videographerID string) ([]*domain.Payout, error)
	ListAll(ctx context.Context, status string) ([]*domain.Payout, error)
}

// CreatePayoutInput carries the fields to open a pending payout.
type CreatePayoutInput struct {
	VideographerID string
	ProjectID      string
	AssignmentID   string
	AmountUSD      float64
	PaymentMethod  string
}

// PayoutService defines use-case operations for payouts.
type PayoutService interface {
	Create(ctx context.Context, in CreatePayoutInput) (*domain.Payout, error)
	// Approve moves a pending payout to approved, recording the approver.
	Approve(ctx context.Context, payoutID, adminID string) (*domain.Payout, error)
	// MarkPaid settles an approved payout. A transaction id is generated
	// when none is supplied.
	MarkPaid(ctx context.Context, payoutID, adminID, transactionID string) (*domain.Payout, error)
	ListForVideographer(ctx context.Context, videographerID string) ([]*domain.Payout, error)
	ListAll(ctx context.Context, status string) ([]*domain.Payout, error)
}
