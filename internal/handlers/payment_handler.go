package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// SchedulePayment creates a single pending payment
func (h *PaymentHandler) SchedulePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.Schedule(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// ScheduleMonthly generates the full monthly schedule for a rental
func (h *PaymentHandler) ScheduleMonthly(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.Atoi(mux.Vars(r)["rental_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}

	payments, err := h.paymentService.ScheduleMonthly(r.Context(), rentalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, payments)
}

// RecordPayment settles a scheduled payment
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var req models.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	payment, err := h.paymentService.Record(r.Context(), id, &req, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Payment not found")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// ListPayments filters by status, rental or tenant via query params
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if rentalID := q.Get("rental_id"); rentalID != "" {
		id, err := strconv.Atoi(rentalID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid rental_id")
			return
		}
		payments, err := h.paymentService.ListByRental(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, payments)
		return
	}

	if tenantID := q.Get("tenant_id"); tenantID != "" {
		id, err := strconv.Atoi(tenantID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tenant_id")
			return
		}
		payments, err := h.paymentService.ListByTenant(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, payments)
		return
	}

	status := models.PaymentStatus(q.Get("status"))
	if status == "" {
		status = models.PaymentPending
	}
	payments, err := h.paymentService.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	if err := h.paymentService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
