package models

import "time"

// TicketStatus is the state of a maintenance ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketPriority levels
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type MaintenanceTicket struct {
	ID               int            `json:"id"`
	PropertyID       int            `json:"property_id"`
	PropertyTitle    string         `json:"property_title,omitempty"`
	RentalID         *int           `json:"rental_id,omitempty"`
	ReportedByTenant *int           `json:"reported_by_tenant,omitempty"`
	ReporterName     string         `json:"reporter_name,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Priority         TicketPriority `json:"priority"`
	Status           TicketStatus   `json:"status"`
	AssignedToUserID *int           `json:"assigned_to_user_id,omitempty"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreateTicketRequest represents the request body for opening a ticket
type CreateTicketRequest struct {
	PropertyID  int    `json:"property_id"`
	RentalID    *int   `json:"rental_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateTicketStatusRequest moves a ticket along its pipeline
type UpdateTicketStatusRequest struct {
	Status           string `json:"status"`
	AssignedToUserID *int   `json:"assigned_to_user_id,omitempty"`
}
