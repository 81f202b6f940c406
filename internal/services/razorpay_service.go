package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"estate-backend/internal/metrics"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/timeutil"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService handles online rent payments from the tenant portal:
// order creation, signature verification and webhook processing.
type RazorpayService struct {
	transactionRepo *repositories.OnlineTransactionRepository
	paymentRepo     *repositories.PaymentRepository
	settingsRepo    *repositories.SystemSettingRepository

	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayService(
	keyID, keySecret, webhookSecret string,
	transactionRepo *repositories.OnlineTransactionRepository,
	paymentRepo *repositories.PaymentRepository,
	settingsRepo *repositories.SystemSettingRepository,
) *RazorpayService {
	return &RazorpayService{
		transactionRepo: transactionRepo,
		paymentRepo:     paymentRepo,
		settingsRepo:    settingsRepo,
		keyID:           keyID,
		keySecret:       keySecret,
		webhookSecret:   webhookSecret,
	}
}

func (s *RazorpayService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// IsEnabled checks the toggle setting; credentials are checked at order time
func (s *RazorpayService) IsEnabled(ctx context.Context) bool {
	return s.settingsRepo.GetBool(ctx, "online_payment_enabled", false)
}

// FeePercent returns the gateway fee passed on to the tenant
func (s *RazorpayService) FeePercent(ctx context.Context) float64 {
	return s.settingsRepo.GetFloat(ctx, "online_payment_fee_percent", 2.0)
}

// CalculateFee rounds the fee to 2 decimal places
func (s *RazorpayService) CalculateFee(amount, feePercent float64) float64 {
	return float64(int((amount*feePercent/100)*100+0.5)) / 100
}

// Status returns what the portal needs to show or hide the pay button
func (s *RazorpayService) Status(ctx context.Context) *models.PaymentStatusResponse {
	return &models.PaymentStatusResponse{
		Enabled:    s.IsEnabled(ctx),
		FeePercent: s.FeePercent(ctx),
	}
}

// CreateOrder creates a Razorpay order for one of the tenant's pending rent
// payments and stores the transaction record
func (s *RazorpayService) CreateOrder(ctx context.Context, tenant *models.Tenant, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	if !s.IsEnabled(ctx) {
		return nil, fmt.Errorf("online payments are currently disabled")
	}
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	payment, err := s.paymentRepo.Get(ctx, req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("payment not found")
	}
	if payment.TenantID != tenant.ID {
		return nil, fmt.Errorf("payment does not belong to tenant")
	}
	if payment.Status == models.PaymentPaid {
		return nil, fmt.Errorf("payment already settled")
	}

	feePercent := s.FeePercent(ctx)
	feeAmount := s.CalculateFee(payment.Amount, feePercent)
	totalAmount := payment.Amount + feeAmount

	// Razorpay amounts travel in the smallest currency unit
	orderData := map[string]interface{}{
		"amount":   int(totalAmount * 100),
		"currency": "INR",
		"receipt":  fmt.Sprintf("rent_%d_%d", payment.ID, timeutil.Now().Unix()),
		"notes": map[string]interface{}{
			"tenant_id":    tenant.ID,
			"tenant_phone": tenant.Phone,
			"payment_id":   payment.ID,
			"rental_id":    payment.RentalID,
		},
	}
	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	orderID := order["id"].(string)

	tx := &models.OnlineTransaction{
		RazorpayOrderID: orderID,
		TenantID:        tenant.ID,
		PaymentID:       payment.ID,
		RentalID:        payment.RentalID,
		Amount:          payment.Amount,
		FeeAmount:       feeAmount,
		TotalAmount:     totalAmount,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	return &models.CreateOrderResponse{
		OrderID:     orderID,
		KeyID:       s.keyID,
		Amount:      payment.Amount,
		FeeAmount:   feeAmount,
		TotalAmount: totalAmount,
		Currency:    "INR",
	}, nil
}

// VerifyPayment checks the checkout callback signature and settles the rent
// payment. Verification is idempotent: replays return the stored transaction.
func (s *RazorpayService) VerifyPayment(ctx context.Context, tenantID int, req *models.VerifyPaymentRequest) (*models.OnlineTransaction, error) {
	tx, err := s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, fmt.Errorf("transaction not found")
	}
	if tx.TenantID != tenantID {
		return nil, fmt.Errorf("transaction does not belong to tenant")
	}
	if tx.Status == models.OnlineTxStatusSuccess {
		return tx, nil
	}

	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.transactionRepo.MarkFailed(ctx, req.RazorpayOrderID, "Invalid signature")
		metrics.OnlinePaymentsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("invalid payment signature")
	}

	method, bank, vpa, cardLast4 := s.fetchPaymentDetails(req.RazorpayPaymentID)

	changed, err := s.transactionRepo.MarkSuccess(ctx, req.RazorpayOrderID,
		req.RazorpayPaymentID, req.RazorpaySignature, method, bank, vpa, cardLast4)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if changed > 0 {
		s.settleRentPayment(ctx, tx)
		metrics.OnlinePaymentsTotal.WithLabelValues("success").Inc()
	}

	return s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
}

func (s *RazorpayService) fetchPaymentDetails(paymentID string) (method, bank, vpa, cardLast4 string) {
	client := s.client()
	if client == nil {
		return
	}
	payment, err := client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		log.Printf("[Razorpay] Failed to fetch payment details: %v", err)
		return
	}

	if m, ok := payment["method"].(string); ok {
		method = m
	}
	if b, ok := payment["bank"].(string); ok {
		bank = b
	}
	if v, ok := payment["vpa"].(string); ok {
		vpa = v
	}
	if card, ok := payment["card"].(map[string]interface{}); ok {
		if last4, ok := card["last4"].(string); ok {
			cardLast4 = last4
		}
	}
	return
}

// settleRentPayment marks the scheduled rent payment paid once the online
// transaction succeeds
func (s *RazorpayService) settleRentPayment(ctx context.Context, tx *models.OnlineTransaction) {
	notes := fmt.Sprintf("Online payment via Razorpay | Order: %s | Fee: %.2f", tx.RazorpayOrderID, tx.FeeAmount)
	if _, err := s.paymentRepo.MarkPaid(ctx, tx.PaymentID, timeutil.Today(), "online", nil, notes); err != nil {
		log.Printf("[Razorpay] Failed to settle rent payment %d: %v", tx.PaymentID, err)
	}
}

func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook HMAC. Unconfigured secret skips
// verification so local setups keep working.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook handles payment.captured and payment.failed events
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, paymentData map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handleCaptured(ctx, paymentData)
	case "payment.failed":
		return s.handleFailed(ctx, paymentData)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func webhookEntity(paymentData map[string]interface{}) map[string]interface{} {
	paymentEntity, ok := paymentData["payment"].(map[string]interface{})
	if !ok {
		paymentEntity = paymentData
	}
	entity, ok := paymentEntity["entity"].(map[string]interface{})
	if !ok {
		entity = paymentEntity
	}
	return entity
}

func (s *RazorpayService) handleCaptured(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)
	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)
	if orderID == "" {
		return fmt.Errorf("missing order_id in webhook")
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("transaction not found: %w", err)
	}
	if tx.Status == models.OnlineTxStatusSuccess {
		return nil
	}

	method, _ := entity["method"].(string)
	bank, _ := entity["bank"].(string)
	vpa, _ := entity["vpa"].(string)

	changed, err := s.transactionRepo.MarkSuccess(ctx, orderID, paymentID, "", method, bank, vpa, "")
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if changed > 0 {
		s.settleRentPayment(ctx, tx)
		metrics.OnlinePaymentsTotal.WithLabelValues("success").Inc()
	}
	return nil
}

func (s *RazorpayService) handleFailed(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)
	orderID, _ := entity["order_id"].(string)
	reason := "Payment failed"
	if desc, ok := entity["error_description"].(string); ok && desc != "" {
		reason = desc
	}
	if orderID == "" {
		return nil
	}
	metrics.OnlinePaymentsTotal.WithLabelValues("failed").Inc()
	return s.transactionRepo.MarkFailed(ctx, orderID, reason)
}

// TransactionHistory returns the tenant's online payment history
func (s *RazorpayService) TransactionHistory(ctx context.Context, tenantID int) ([]*models.OnlineTransaction, error) {
	return s.transactionRepo.ListByTenant(ctx, tenantID)
}
