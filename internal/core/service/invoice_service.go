package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type InvoiceService struct {
	repo  ports.InvoiceRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, audit ports.AuditRecorder, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, audit: audit, log: log}
}

// Create issues an invoice against a project.
func (s *InvoiceService) Create(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if in.ProjectID == "" || in.CustomerID == "" || in.AmountUSD <= 0 {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	dueAt := in.DueAt
	if dueAt.IsZero() {
		dueAt = now.AddDate(0, 0, 30)
	}

	invoice := &domain.Invoice{
		ID:         uuid.NewString(),
		Number:     generateInvoiceNumber(now),
		ProjectID:  in.ProjectID,
		CustomerID: in.CustomerID,
		AmountUSD:  in.AmountUSD,
		Status:     domain.InvoiceUnpaid,
		IssuedAt:   now,
		DueAt:      dueAt,
	}

	if err := s.repo.Insert(ctx, invoice); err != nil {
		s.log.Error().Err(err).Str("project_id", in.ProjectID).Msg("failed to create invoice")
		return nil, err
	}

	s.log.Info().Str("number", invoice.Number).Str("customer_id", in.CustomerID).Msg("invoice issued")
	return invoice, nil
}

// ListForCustomer returns the customer's invoices with overdue derived.
func (s *InvoiceService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error) {
	invoices, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	deriveOverdue(invoices, time.Now().UTC())
	return invoices, nil
}

// ListAll returns every invoice, overdue derived (admin view).
func (s *InvoiceService) ListAll(ctx context.Context) ([]*domain.Invoice, error) {
	invoices, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	deriveOverdue(invoices, time.Now().UTC())
	return invoices, nil
}

// MarkPaid settles an unpaid invoice.
func (s *InvoiceService) MarkPaid(ctx context.Context, invoiceID, adminID string) error {
	invoice, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoicePaid {
		return domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.repo.MarkPaid(ctx, invoiceID, now); err != nil {
		return err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			EventType: domain.AuditEventBilling,
			Details:   map[string]any{"action": "invoice_paid", "invoice_id": invoiceID, "number": invoice.Number},
			ActorID:   adminID,
			Timestamp: now,
		})
	}
	return nil
}

func deriveOverdue(invoices []*domain.Invoice, now time.Time) {
	for _, inv := range invoices {
		inv.Status = inv.StatusAt(now)
	}
}

// generateInvoiceNumber returns an invoice number in the format NB-YYYY-XXXXXX.
func generateInvoiceNumber(now time.Time) string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("NB-%d-%06X", now.Year(), now.UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("NB-%d-%06X", now.Year(), b)
}
