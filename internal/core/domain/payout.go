package domain

import (
	"errors"
	"time"
)

// PayoutStatus is the lifecycle state of a videographer payout.
type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutPaid     PayoutStatus = "paid"
)

// payoutTransitions defines the allowed payout state machine.
var payoutTransitions = map[PayoutStatus][]PayoutStatus{
	PayoutPending:  {PayoutApproved},
	PayoutApproved: {PayoutPaid},
}

var ErrPayoutNotFound = errors.New("payout not found")

// CanTransitionTo reports whether a payout may move from its current status
// to next.
func (s PayoutStatus) CanTransitionTo(next PayoutStatus) bool {
	for _, allowed := range payoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payout is money owed to a videographer for a completed assignment.
type Payout struct {
	ID              string       `json:"id" bson:"_id,omitempty"`
	VideographerID  string       `json:"videographer_id" bson:"videographer_id"`
	ProjectID       string       `json:"project_id" bson:"project_id"`
	AssignmentID    string       `json:"assignment_id" bson:"assignment_id"`
	AmountUSD       float64      `json:"amount_usd" bson:"amount_usd"`
	PaymentMethod   string       `json:"payment_method" bson:"payment_method"`
	Status          PayoutStatus `json:"status" bson:"status"`
	AdminApprovedBy string       `json:"admin_approved_by,omitempty" bson:"admin_approved_by,omitempty"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	PaidAt          *time.Time   `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	TransactionID   string       `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at" bson:"created_at"`
}
