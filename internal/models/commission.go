package models

import "time"

// CommissionStatus is the payout state of a commission
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

// Commission records the split of a sale commission between the agent who
// captured the listing and the agent who closed the sale. Shares are
// percentages of the total commission rate, not of the sale price.
type Commission struct {
	ID               int              `json:"id"`
	PropertyID       int              `json:"property_id"`
	PropertyTitle    string           `json:"property_title,omitempty"`
	SalePrice        float64          `json:"sale_price"`
	TotalRate        float64          `json:"total_rate"` // percent of sale price, e.g. 5
	CapturingAgentID int              `json:"capturing_agent_id"`
	SellingAgentID   int              `json:"selling_agent_id"`
	CapturingShare   float64          `json:"capturing_share"` // percent of total rate
	SellingShare     float64          `json:"selling_share"`   // percent of total rate
	Status           CommissionStatus `json:"status"`
	PaidAt           *time.Time       `json:"paid_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CreateCommissionRequest records a completed sale. Shares are computed
// server-side from the two agent ids; clients never send them.
type CreateCommissionRequest struct {
	PropertyID       int     `json:"property_id"`
	SalePrice        float64 `json:"sale_price"`
	TotalRate        float64 `json:"total_rate"`
	CapturingAgentID int     `json:"capturing_agent_id"`
	SellingAgentID   int     `json:"selling_agent_id"`
}

// AgentEarnings summarises one agent's commission amounts
type AgentEarnings struct {
	AgentID     int     `json:"agent_id"`
	AgentName   string  `json:"agent_name,omitempty"`
	Total       float64 `json:"total"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	Count       int     `json:"count"`
}
