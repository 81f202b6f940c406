package models

import "time"

// OnlineTransactionStatus represents the status of an online payment
type OnlineTransactionStatus string

const (
	OnlineTxStatusPending  OnlineTransactionStatus = "pending"
	OnlineTxStatusSuccess  OnlineTransactionStatus = "success"
	OnlineTxStatusFailed   OnlineTransactionStatus = "failed"
	OnlineTxStatusRefunded OnlineTransactionStatus = "refunded"
)

// OnlineTransaction represents a Razorpay rent payment transaction
type OnlineTransaction struct {
	ID                int    `json:"id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `json:"-"` // Don't expose signature in JSON

	TenantID    int    `json:"tenant_id"`
	TenantPhone string `json:"tenant_phone"`
	TenantName  string `json:"tenant_name"`
	PaymentID   int    `json:"payment_id"` // scheduled rent payment being settled
	RentalID    int    `json:"rental_id"`

	// Amounts
	Amount      float64 `json:"amount"`       // rent amount
	FeeAmount   float64 `json:"fee_amount"`   // gateway fee passed on
	TotalAmount float64 `json:"total_amount"` // what the tenant pays

	// Payment details from Razorpay
	PaymentMethod string `json:"payment_method,omitempty"` // upi, card, netbanking, wallet
	Bank          string `json:"bank,omitempty"`
	VPA           string `json:"vpa,omitempty"`
	CardLast4     string `json:"card_last4,omitempty"`

	Status        OnlineTransactionStatus `json:"status"`
	FailureReason string                  `json:"failure_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateOrderRequest asks for a Razorpay order for a pending rent payment
type CreateOrderRequest struct {
	PaymentID int `json:"payment_id"`
}

// CreateOrderResponse carries what the checkout widget needs
type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	KeyID       string  `json:"key_id"`
	Amount      float64 `json:"amount"`
	FeeAmount   float64 `json:"fee_amount"`
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
}

// VerifyPaymentRequest is the checkout callback payload
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// PaymentStatusResponse tells the portal whether online payment is available
type PaymentStatusResponse struct {
	Enabled    bool    `json:"enabled"`
	FeePercent float64 `json:"fee_percent"`
}
