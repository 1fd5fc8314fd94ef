package domain

import (
	"errors"
	"time"
)

// InvoiceStatus is the billing state of an invoice. Overdue is derived, not
// stored: an unpaid invoice past its due date reports as overdue.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Invoice bills a customer for a project.
type Invoice struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	Number     string        `json:"number" bson:"number"`
	ProjectID  string        `json:"project_id" bson:"project_id"`
	CustomerID string        `json:"customer_id" bson:"customer_id"`
	AmountUSD  float64       `json:"amount_usd" bson:"amount_usd"`
	Status     InvoiceStatus `json:"status" bson:"status"`
	IssuedAt   time.Time     `json:"issued_at" bson:"issued_at"`
	DueAt      time.Time     `json:"due_at" bson:"due_at"`
	PaidAt     *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

// StatusAt resolves the effective status at the given instant.
func (i Invoice) StatusAt(now time.Time) InvoiceStatus {
	if i.Status == InvoiceUnpaid && now.After(i.DueAt) {
		return InvoiceOverdue
	}
	return i.Status
}
