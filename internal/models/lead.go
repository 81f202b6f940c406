package models

import "time"

// LeadStatus is the pipeline stage of a sales lead
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

type Lead struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Interest          string     `json:"interest"` // buy, rent, sell
	PropertyID        *int       `json:"property_id,omitempty"`
	PropertyTitle     string     `json:"property_title,omitempty"`
	AssignedAgentID   *int       `json:"assigned_agent_id,omitempty"`
	AssignedAgentName string     `json:"assigned_agent_name,omitempty"`
	Status            LeadStatus `json:"status"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateLeadRequest represents the request body for creating a lead
type CreateLeadRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Interest   string `json:"interest"`
	PropertyID *int   `json:"property_id,omitempty"`
	Notes      string `json:"notes"`
}

// UpdateLeadRequest represents the request body for updating a lead
type UpdateLeadRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Interest   string `json:"interest"`
	PropertyID *int   `json:"property_id,omitempty"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// AssignLeadRequest assigns a lead to an agent
type AssignLeadRequest struct {
	AgentID int `json:"agent_id"`
}
