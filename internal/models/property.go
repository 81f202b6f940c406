package models

import "time"

// PropertyStatus is the listing state of a property
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyRented    PropertyStatus = "rented"
	PropertySold      PropertyStatus = "sold"
	PropertyInactive  PropertyStatus = "inactive"
)

type Property struct {
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	PropertyType     string         `json:"property_type"` // apartment, house, office, retail
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	AreaSqm          float64        `json:"area_sqm"`
	SalePrice        float64        `json:"sale_price"`
	MonthlyRent      float64        `json:"monthly_rent"`
	Status           PropertyStatus `json:"status"`
	CapturingAgentID int            `json:"capturing_agent_id"`
	AgentName        string         `json:"agent_name,omitempty"` // Joined from users table
	Description      string         `json:"description"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreatePropertyRequest represents the request body for creating a property
type CreatePropertyRequest struct {
	Title            string  `json:"title"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	PropertyType     string  `json:"property_type"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        int     `json:"bathrooms"`
	AreaSqm          float64 `json:"area_sqm"`
	SalePrice        float64 `json:"sale_price"`
	MonthlyRent      float64 `json:"monthly_rent"`
	CapturingAgentID int     `json:"capturing_agent_id"`
	Description      string  `json:"description"`
}

// UpdatePropertyRequest represents the request body for updating a property
type UpdatePropertyRequest struct {
	Title            string  `json:"title"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	PropertyType     string  `json:"property_type"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        int     `json:"bathrooms"`
	AreaSqm          float64 `json:"area_sqm"`
	SalePrice        float64 `json:"sale_price"`
	MonthlyRent      float64 `json:"monthly_rent"`
	CapturingAgentID int     `json:"capturing_agent_id"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
}

// PropertyFilter holds optional list filters
type PropertyFilter struct {
	City         string
	PropertyType string
	Status       string
	AgentID      int
}
