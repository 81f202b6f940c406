package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

// TenantPortalHandler serves the tenant-facing API: everything here is scoped
// to the tenant ID carried in the portal token.
type TenantPortalHandler struct {
	portalService   *services.TenantPortalService
	renewalService  *services.RenewalService
	razorpayService *services.RazorpayService
	reportService   *services.ReportService
}

func NewTenantPortalHandler(
	portalService *services.TenantPortalService,
	renewalService *services.RenewalService,
	razorpayService *services.RazorpayService,
	reportService *services.ReportService,
) *TenantPortalHandler {
	return &TenantPortalHandler{
		portalService:   portalService,
		renewalService:  renewalService,
		razorpayService: razorpayService,
		reportService:   reportService,
	}
}

func (h *TenantPortalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.TenantLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Phone == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Phone and password are required")
		return
	}

	resp, err := h.portalService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrTenantInvalidLogin) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ValidateSession confirms the portal token is still good. Runs behind the
// tenant auth middleware, so reaching it at all means the token checked out.
func (h *TenantPortalHandler) ValidateSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":     true,
		"tenant_id": tenantID,
	})
}

// Logout acknowledges session teardown; portal tokens are stateless
func (h *TenantPortalHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *TenantPortalHandler) Profile(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tenant, err := h.portalService.Profile(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Tenant not found")
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantPortalHandler) MyRentals(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	rentals, err := h.portalService.MyRentals(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *TenantPortalHandler) MyPayments(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	payments, err := h.portalService.MyPayments(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *TenantPortalHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.portalService.ChangePassword(r.Context(), tenantID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

// --- Maintenance tickets ---

func (h *TenantPortalHandler) MyTickets(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	tickets, err := h.portalService.MyTickets(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *TenantPortalHandler) OpenTicket(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())

	var req models.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.portalService.OpenTicket(r.Context(), tenantID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

// --- Contract renewals ---

// RenewalEligibility answers whether the tenant can request a renewal for the
// rental right now
func (h *TenantPortalHandler) RenewalEligibility(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	rentalID, err := strconv.Atoi(mux.Vars(r)["rental_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}

	eligibility, err := h.renewalService.Eligibility(r.Context(), rentalID, tenantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, eligibility)
}

func (h *TenantPortalHandler) RequestRenewal(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())

	var req models.CreateRenewalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.renewalService.Create(r.Context(), tenantID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *TenantPortalHandler) MyRenewalRequests(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	requests, err := h.renewalService.ListByTenant(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *TenantPortalHandler) CancelRenewal(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := h.renewalService.Cancel(r.Context(), id, tenantID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request cancelled"})
}

// --- Online payments ---

func (h *TenantPortalHandler) OnlinePaymentStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.razorpayService.Status(r.Context()))
}

func (h *TenantPortalHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())

	tenant, err := h.portalService.Profile(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Tenant not found")
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.razorpayService.CreateOrder(r.Context(), tenant, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *TenantPortalHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())

	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.razorpayService.VerifyPayment(r.Context(), tenantID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TenantPortalHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	history, err := h.razorpayService.TransactionHistory(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// MyReceipt lets a tenant download the receipt for their own settled payment
func (h *TenantPortalHandler) MyReceipt(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantIDFromContext(r.Context())
	paymentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	// Ownership check before handing out the PDF
	payments, err := h.portalService.MyPayments(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	owned := false
	for _, p := range payments {
		if p.ID == paymentID {
			owned = true
			break
		}
	}
	if !owned {
		writeError(w, http.StatusForbidden, "Payment does not belong to you")
		return
	}

	pdfBytes, err := h.reportService.GenerateReceiptPDF(r.Context(), paymentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="receipt.pdf"`)
	w.Write(pdfBytes)
}
