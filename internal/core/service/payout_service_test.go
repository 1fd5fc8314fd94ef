package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type stubPayoutRepo struct {
	payouts map[string]*domain.Payout
}

func newStubPayoutRepo() *stubPayoutRepo {
	return &stubPayoutRepo{payouts: make(map[string]*domain.Payout)}
}

func (r *stubPayoutRepo) Insert(_ context.Context, p *domain.Payout) error {
	clone := *p
	r.payouts[p.ID] = &clone
	return nil
}

func (r *stubPayoutRepo) FindByID(_ context.Context, id string) (*domain.Payout, error) {
	p, ok := r.payouts[id]
	if !ok {
		return nil, domain.ErrPayoutNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPayoutRepo) Update(_ context.Context, p *domain.Payout) error {
	if _, ok := r.payouts[p.ID]; !ok {
		return domain.ErrPayoutNotFound
	}
	clone := *p
	r.payouts[p.ID] = &clone
	return nil
}

func (r *stubPayoutRepo) ListByVideographer(_ context.Context, videographerID string) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for _, p := range r.payouts {
		if p.VideographerID == videographerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPayoutRepo) ListAll(_ context.Context, status string) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for _, p := range r.payouts {
		if status != "" && string(p.Status) != status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func newTestPayoutService() (*PayoutService, *stubPayoutRepo, *stubRecorder) {
	repo := newStubPayoutRepo()
	audit := &stubRecorder{}
	return NewPayoutService(repo, audit, zerolog.Nop()), repo, audit
}

func TestPayoutService_Lifecycle(t *testing.T) {
	svc, repo, audit := newTestPayoutService()
	ctx := context.Background()

	payout, err := svc.Create(ctx, ports.CreatePayoutInput{
		VideographerID: "v1",
		ProjectID:      "p1",
		AmountUSD:      350,
		PaymentMethod:  "bank_transfer",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if payout.Status != domain.PayoutPending {
		t.Fatalf("new payouts start pending, got %s", payout.Status)
	}

	// Cannot settle before approval.
	if _, err := svc.MarkPaid(ctx, payout.ID, "a1", ""); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	approved, err := svc.Approve(ctx, payout.ID, "a1")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != domain.PayoutApproved || approved.AdminApprovedBy != "a1" {
		t.Fatalf("approval not recorded: %+v", approved)
	}
	if approved.ApprovedAt == nil {
		t.Fatalf("approval timestamp missing")
	}

	// Double approval is rejected.
	if _, err := svc.Approve(ctx, payout.ID, "a2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	paid, err := svc.MarkPaid(ctx, payout.ID, "a1", "")
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.Status != domain.PayoutPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}
	if paid.TransactionID == "" {
		t.Fatalf("expected a generated transaction id")
	}
	if paid.PaidAt == nil {
		t.Fatalf("payment timestamp missing")
	}

	if got := repo.payouts[payout.ID].Status; got != domain.PayoutPaid {
		t.Fatalf("final status not persisted, got %s", got)
	}
	if len(audit.events) != 2 {
		t.Fatalf("expected billing audit events for approve and pay, got %d", len(audit.events))
	}
}

func TestPayoutService_MarkPaid_KeepsSuppliedTransactionID(t *testing.T) {
	svc, _, _ := newTestPayoutService()
	ctx := context.Background()

	payout, err := svc.Create(ctx, ports.CreatePayoutInput{
		VideographerID: "v1", ProjectID: "p1", AmountUSD: 100, PaymentMethod: "paypal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Approve(ctx, payout.ID, "a1"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	paid, err := svc.MarkPaid(ctx, payout.ID, "a1", "txn-42")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.TransactionID != "txn-42" {
		t.Fatalf("expected txn-42, got %s", paid.TransactionID)
	}
}

func TestPayoutService_Create_Validation(t *testing.T) {
	svc, _, _ := newTestPayoutService()
	ctx := context.Background()

	bad := []ports.CreatePayoutInput{
		{},
		{VideographerID: "v1", ProjectID: "p1", AmountUSD: 0},
		{VideographerID: "v1", ProjectID: "p1", AmountUSD: -50},
		{VideographerID: "", ProjectID: "p1", AmountUSD: 100},
	}
	for i, in := range bad {
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}
