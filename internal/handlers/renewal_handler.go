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

// RenewalHandler is the staff side of contract renewals; tenants file
// requests through the portal
type RenewalHandler struct {
	renewalService *services.RenewalService
}

func NewRenewalHandler(renewalService *services.RenewalService) *RenewalHandler {
	return &RenewalHandler{renewalService: renewalService}
}

func (h *RenewalHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("status") == "pending" {
		requests, err := h.renewalService.ListPending(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, requests)
		return
	}

	requests, err := h.renewalService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Approve grants the renewal and extends the contract
func (h *RenewalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req models.DecideRenewalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	request, err := h.renewalService.Approve(r.Context(), id, &req, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *RenewalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req models.DecideRenewalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	request, err := h.renewalService.Reject(r.Context(), id, &req, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, request)
}
