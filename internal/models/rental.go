package models

import "time"

// RentalStatus is the lifecycle status of a rental contract.
//
// Only StatusActive, StatusTerminated and StatusCancelled are ever stored;
// pending, near_expiration and expired are derived from the contract dates by
// the rules package. Terminated/cancelled are manual overrides and always win
// over the derived value.
type RentalStatus string

const (
	StatusPending        RentalStatus = "pending"
	StatusActive         RentalStatus = "active"
	StatusNearExpiration RentalStatus = "near_expiration"
	StatusExpired        RentalStatus = "expired"
	StatusTerminated     RentalStatus = "terminated"
	StatusCancelled      RentalStatus = "cancelled"
)

// IsOverride reports whether s is a manually-set terminal status
func (s RentalStatus) IsOverride() bool {
	return s == StatusTerminated || s == StatusCancelled
}

// RentalType distinguishes contract kinds
type RentalType string

const (
	RentalLongTerm  RentalType = "long_term"
	RentalTemporary RentalType = "temporary"
	RentalVacation  RentalType = "vacation"
)

type Rental struct {
	ID               int          `json:"id"`
	PropertyID       int          `json:"property_id"`
	PropertyTitle    string       `json:"property_title,omitempty"` // Joined from properties
	TenantID         int          `json:"tenant_id"`
	TenantName       string       `json:"tenant_name,omitempty"` // Joined from tenants
	TenantPhone      string       `json:"tenant_phone,omitempty"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          time.Time    `json:"end_date"`
	MonthlyAmount    float64      `json:"monthly_amount"`
	Status           RentalStatus `json:"status"`                     // stored: active, terminated or cancelled
	EffectiveStatus  RentalStatus `json:"effective_status,omitempty"` // derived, filled by the service layer
	RentalType       RentalType   `json:"rental_type"`
	IncludedServices string       `json:"included_services"` // comma-separated: water, electricity, internet...
	MaxOccupants     int          `json:"max_occupants"`
	PetsAllowed      bool         `json:"pets_allowed"`
	SmokingAllowed   bool         `json:"smoking_allowed"`
	CreatedByUserID  int          `json:"created_by_user_id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CreateRentalRequest represents the request body for creating a rental.
// Dates travel as YYYY-MM-DD strings and are validated before any rule runs.
type CreateRentalRequest struct {
	PropertyID       int     `json:"property_id"`
	TenantID         int     `json:"tenant_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	MonthlyAmount    float64 `json:"monthly_amount"`
	RentalType       string  `json:"rental_type"`
	IncludedServices string  `json:"included_services"`
	MaxOccupants     int     `json:"max_occupants"`
	PetsAllowed      bool    `json:"pets_allowed"`
	SmokingAllowed   bool    `json:"smoking_allowed"`
}

// UpdateRentalRequest represents the request body for updating a rental
type UpdateRentalRequest struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	MonthlyAmount    float64 `json:"monthly_amount"`
	RentalType       string  `json:"rental_type"`
	IncludedServices string  `json:"included_services"`
	MaxOccupants     int     `json:"max_occupants"`
	PetsAllowed      bool    `json:"pets_allowed"`
	SmokingAllowed   bool    `json:"smoking_allowed"`
}

// OverrideStatusRequest sets a manual terminal status (terminated/cancelled)
type OverrideStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ConflictResponse is returned with a 409 when requested dates overlap an
// existing booking for the same property
type ConflictResponse struct {
	Message       string    `json:"message"`
	Conflicts     []*Rental `json:"conflicts"`
	NextAvailable string    `json:"next_available,omitempty"` // YYYY-MM-DD
}
