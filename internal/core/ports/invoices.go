package ports

import (
	"context"
	"time"

	"github.com/northbound/studio-api/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Insert(ctx context.Context, inv *domain.Invoice) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error)
	ListAll(ctx context.Context) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, id string, at time.Time) error
}

// CreateInvoiceInput carries the fields to bill a customer for a project.
type CreateInvoiceInput struct {
	ProjectID  string
	CustomerID string
	AmountUSD  float64
	DueAt      time.Time
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	Create(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	// ListForCustomer returns the customer's invoices with the overdue
	// status already derived.
	ListForCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error)
	ListAll(ctx context.Context) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, invoiceID, adminID string) error
}
