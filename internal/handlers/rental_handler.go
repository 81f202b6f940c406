package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalService *services.RentalService
	adminLogs     *repositories.AdminActionLogRepository
}

func NewRentalHandler(rentalService *services.RentalService, adminLogs *repositories.AdminActionLogRepository) *RentalHandler {
	return &RentalHandler{rentalService: rentalService, adminLogs: adminLogs}
}

// CreateRental books a property. Overlapping dates return 409 with the
// conflicting contracts and the next available date.
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	rental, err := h.rentalService.Create(r.Context(), &req, userID)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			writeJSON(w, http.StatusConflict, conflict.Response)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// ListRentals returns all contracts, or one tenant's with ?tenant_id=
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	if tenantID := r.URL.Query().Get("tenant_id"); tenantID != "" {
		id, err := strconv.Atoi(tenantID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tenant_id")
			return
		}
		rentals, err := h.rentalService.ListByTenant(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rentals)
		return
	}

	rentals, err := h.rentalService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}

	rental, err := h.rentalService.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Rental not found")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}

	var req models.UpdateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rental, err := h.rentalService.Update(r.Context(), id, &req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			writeJSON(w, http.StatusConflict, conflict.Response)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// OverrideStatus manually terminates or cancels a contract
func (h *RentalHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}

	var req models.OverrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rental, err := h.rentalService.OverrideStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if adminID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		ip := getIPAddress(r)
		h.adminLogs.Create(r.Context(), &models.AdminActionLog{
			AdminUserID: adminID,
			ActionType:  "override_rental_status",
			TargetType:  "rental",
			TargetID:    &id,
			Description: fmt.Sprintf("Set status=%s reason=%q", req.Status, req.Reason),
			IPAddress:   &ip,
		})
	}
	writeJSON(w, http.StatusOK, rental)
}
