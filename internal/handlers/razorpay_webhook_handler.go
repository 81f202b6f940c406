package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"estate-backend/internal/services"
)

type RazorpayWebhookHandler struct {
	razorpayService *services.RazorpayService
}

func NewRazorpayWebhookHandler(razorpayService *services.RazorpayService) *RazorpayWebhookHandler {
	return &RazorpayWebhookHandler{razorpayService: razorpayService}
}

// HandleWebhook receives gateway events. Always answers 200 for processing
// errors so the gateway doesn't retry forever; only bad signatures get 400.
func (h *RazorpayWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.razorpayService.VerifyWebhookSignature(body, signature) {
		log.Printf("[Webhook] Invalid razorpay signature from %s", getIPAddress(r))
		writeError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	var payload struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.razorpayService.ProcessWebhook(r.Context(), payload.Event, payload.Payload); err != nil {
		log.Printf("[Webhook] Failed to process %s: %v", payload.Event, err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
