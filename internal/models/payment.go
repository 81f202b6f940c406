package models

import "time"

// PaymentStatus is the state of a scheduled rent payment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID                int           `json:"id"`
	ReceiptNumber     string        `json:"receipt_number,omitempty"` // Assigned when paid
	RentalID          int           `json:"rental_id"`
	TenantID          int           `json:"tenant_id"`
	TenantName        string        `json:"tenant_name,omitempty"` // Joined from tenants
	PropertyTitle     string        `json:"property_title,omitempty"`
	DueDate           time.Time     `json:"due_date"`
	Amount            float64       `json:"amount"`
	Status            PaymentStatus `json:"status"`
	PaidDate          *time.Time    `json:"paid_date,omitempty"`
	Method            string        `json:"method,omitempty"` // cash, transfer, card, online
	ProcessedByUserID *int          `json:"processed_by_user_id,omitempty"`
	ProcessedByName   string        `json:"processed_by_name,omitempty"`
	Notes             string        `json:"notes"`
	CreatedAt         time.Time     `json:"created_at"`
}

// CreatePaymentRequest schedules a rent payment for a rental
type CreatePaymentRequest struct {
	RentalID int     `json:"rental_id"`
	DueDate  string  `json:"due_date"` // YYYY-MM-DD
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

// RecordPaymentRequest marks a scheduled payment as paid
type RecordPaymentRequest struct {
	Method   string `json:"method"`
	PaidDate string `json:"paid_date,omitempty"` // YYYY-MM-DD, defaults to today
	Notes    string `json:"notes"`
}
