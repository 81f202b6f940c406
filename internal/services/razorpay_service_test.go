package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRazorpayService() *RazorpayService {
	return NewRazorpayService("key_id", "key_secret", "webhook_secret", nil, nil, nil)
}

func TestCalculateFee(t *testing.T) {
	s := testRazorpayService()

	tests := []struct {
		amount     float64
		feePercent float64
		want       float64
	}{
		{1000, 2, 20},
		{999.99, 2, 20},   // 19.9998 rounds up
		{100, 2.5, 2.5},
		{0, 2, 0},
		{333.33, 3, 10},   // 9.9999 rounds up
		{1, 2, 0.02},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, s.CalculateFee(tt.amount, tt.feePercent), 0.001,
			"fee of %.2f at %.1f%%", tt.amount, tt.feePercent)
	}
}

func TestVerifySignature(t *testing.T) {
	s := testRazorpayService()

	orderID := "order_123"
	paymentID := "pay_456"
	h := hmac.New(sha256.New, []byte("key_secret"))
	h.Write([]byte(orderID + "|" + paymentID))
	valid := hex.EncodeToString(h.Sum(nil))

	assert.True(t, s.verifySignature(orderID, paymentID, valid))
	assert.False(t, s.verifySignature(orderID, paymentID, "deadbeef"))
	assert.False(t, s.verifySignature("order_999", paymentID, valid))
}

func TestVerifySignature_NoSecret(t *testing.T) {
	s := NewRazorpayService("key_id", "", "", nil, nil, nil)
	assert.False(t, s.verifySignature("order_123", "pay_456", "anything"))
}

func TestVerifyWebhookSignature(t *testing.T) {
	s := testRazorpayService()
	body := []byte(`{"event":"payment.captured"}`)

	h := hmac.New(sha256.New, []byte("webhook_secret"))
	h.Write(body)
	valid := hex.EncodeToString(h.Sum(nil))

	assert.True(t, s.VerifyWebhookSignature(body, valid))
	assert.False(t, s.VerifyWebhookSignature(body, "bogus"))
	assert.False(t, s.VerifyWebhookSignature([]byte("tampered"), valid))
}

func TestVerifyWebhookSignature_UnconfiguredSkips(t *testing.T) {
	s := NewRazorpayService("key_id", "key_secret", "", nil, nil, nil)
	assert.True(t, s.VerifyWebhookSignature([]byte("whatever"), "any-signature"))
}

func TestWebhookEntity_Unwrapping(t *testing.T) {
	// Standard shape: payload.payment.entity
	nested := map[string]interface{}{
		"payment": map[string]interface{}{
			"entity": map[string]interface{}{"order_id": "order_1"},
		},
	}
	assert.Equal(t, "order_1", webhookEntity(nested)["order_id"])

	// Flat shape straight from the entity
	flat := map[string]interface{}{"order_id": "order_2"}
	assert.Equal(t, "order_2", webhookEntity(flat)["order_id"])
}
