package models

import "time"

// RenewalStatus is the state of a renewal request.
//
// State machine: pending -> approved | rejected (terminal), or
// pending -> cancelled (terminal) when the tenant withdraws. No transitions
// once terminal. At most one pending request exists per rental.
type RenewalStatus string

const (
	RenewalPending   RenewalStatus = "pending"
	RenewalApproved  RenewalStatus = "approved"
	RenewalRejected  RenewalStatus = "rejected"
	RenewalCancelled RenewalStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed
func (s RenewalStatus) IsTerminal() bool {
	return s == RenewalApproved || s == RenewalRejected || s == RenewalCancelled
}

type RenewalRequest struct {
	ID              int           `json:"id"`
	RentalID        int           `json:"rental_id"`
	TenantID        int           `json:"tenant_id"`
	TenantName      string        `json:"tenant_name,omitempty"`
	PropertyTitle   string        `json:"property_title,omitempty"`
	Months          int           `json:"months"` // requested extension
	ProposedAmount  float64       `json:"proposed_amount"`
	Status          RenewalStatus `json:"status"`
	AdminResponse   string        `json:"admin_response"`
	DecidedByUserID *int          `json:"decided_by_user_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CreateRenewalRequest is the tenant portal payload for requesting a renewal
type CreateRenewalRequest struct {
	RentalID       int     `json:"rental_id"`
	Months         int     `json:"months"`
	ProposedAmount float64 `json:"proposed_amount"`
}

// DecideRenewalRequest is the staff payload for approving or rejecting
type DecideRenewalRequest struct {
	Response string `json:"response"`
}

// RenewalEligibility is surfaced to the tenant dashboard so the UI can
// disable the request button with a reason instead of failing on submit
type RenewalEligibility struct {
	CanRequest          bool   `json:"can_request"`
	Reason              string `json:"reason,omitempty"`
	DaysUntilExpiration int    `json:"days_until_expiration"`
}
