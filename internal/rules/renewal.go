package rules

import (
	"time"

	"estate-backend/internal/models"
)

// DefaultRenewalWindowDays is used when the renewal_window_days system
// setting is missing or unparseable.
const DefaultRenewalWindowDays = 60

// Renewal refusal reasons, surfaced to the tenant UI verbatim
const (
	ReasonPendingExists = "a renewal request for this rental is already pending"
	ReasonNotActive     = "only active contracts can be renewed"
	ReasonTooEarly      = "the contract is not close enough to its end date yet"
)

// CanRequestRenewal decides whether a tenant may submit a renewal request.
// It never returns an error; ineligibility comes back as (false, reason).
//
//   - false while another request for the rental is still pending
//   - false unless the resolved status is active or near_expiration
//   - false while more than windowDays remain until the end date
func CanRequestRenewal(rental *models.Rental, hasPendingRequest bool, windowDays int, today time.Time) (bool, string) {
	if hasPendingRequest {
		return false, ReasonPendingExists
	}

	status := ResolveStatus(rental.Status, rental.StartDate, rental.EndDate, today)
	if status != models.StatusActive && status != models.StatusNearExpiration {
		return false, ReasonNotActive
	}

	if DaysUntilExpiration(rental.EndDate, today) > windowDays {
		return false, ReasonTooEarly
	}

	return true, ""
}
