package domain

import (
	"errors"
	"time"
)

// TicketCategory classifies a support request.
type TicketCategory string

const (
	TicketCategoryProject   TicketCategory = "project"
	TicketCategoryBilling   TicketCategory = "billing"
	TicketCategoryAccount   TicketCategory = "account"
	TicketCategoryTechnical TicketCategory = "technical"
	TicketCategoryOther     TicketCategory = "other"
)

// TicketPriority orders support requests by urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityNormal TicketPriority = "normal"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:       {TicketInProgress, TicketResolved},
	TicketInProgress: {TicketResolved},
	TicketResolved:   {TicketClosed},
}

var ErrTicketNotFound = errors.New("ticket not found")

// ParseTicketCategory validates a raw category string.
func ParseTicketCategory(s string) (TicketCategory, error) {
	switch TicketCategory(s) {
	case TicketCategoryProject, TicketCategoryBilling, TicketCategoryAccount,
		TicketCategoryTechnical, TicketCategoryOther:
		return TicketCategory(s), nil
	}
	return "", ErrValidation
}

// ParseTicketPriority validates a raw priority string.
func ParseTicketPriority(s string) (TicketPriority, error) {
	switch TicketPriority(s) {
	case TicketPriorityLow, TicketPriorityNormal, TicketPriorityHigh, TicketPriorityUrgent:
		return TicketPriority(s), nil
	}
	return "", ErrValidation
}

// CanTransitionTo reports whether a ticket may move from its current status
// to next. Closed tickets are terminal.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range ticketTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SupportTicket is a support request from a customer or videographer.
// Exactly one of SubmittedByUserID / SubmittedByVideographerID is set,
// matching the submitter's role.
type SupportTicket struct {
	ID                        string         `json:"id" bson:"_id,omitempty"`
	Subject                   string         `json:"subject" bson:"subject"`
	Description               string         `json:"description" bson:"description"`
	Category                  TicketCategory `json:"category" bson:"category"`
	Priority                  TicketPriority `json:"priority" bson:"priority"`
	Status                    TicketStatus   `json:"status" bson:"status"`
	SubmittedByUserID         string         `json:"submitted_by_user_id,omitempty" bson:"submitted_by_user_id,omitempty"`
	SubmittedByVideographerID string         `json:"submitted_by_videographer_id,omitempty" bson:"submitted_by_videographer_id,omitempty"`
	AssignedAdminID           string         `json:"assigned_admin_id,omitempty" bson:"assigned_admin_id,omitempty"`
	AttachmentURL             string         `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	CreatedAt                 time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at" bson:"updated_at"`
}
