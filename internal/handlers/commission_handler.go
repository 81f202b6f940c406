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

type CommissionHandler struct {
	commissionService *services.CommissionService
}

func NewCommissionHandler(commissionService *services.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

func (h *CommissionHandler) CreateCommission(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	commission, err := h.commissionService.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, commission)
}

func (h *CommissionHandler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	if agentID := r.URL.Query().Get("agent_id"); agentID != "" {
		id, err := strconv.Atoi(agentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid agent_id")
			return
		}
		commissions, err := h.commissionService.ListByAgent(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, commissions)
		return
	}

	commissions, err := h.commissionService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, commissions)
}

func (h *CommissionHandler) GetCommission(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid commission ID")
		return
	}

	commission, err := h.commissionService.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Commission not found")
		return
	}
	writeJSON(w, http.StatusOK, commission)
}

func (h *CommissionHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid commission ID")
		return
	}

	commission, err := h.commissionService.MarkPaid(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, commission)
}

// GetEarnings totals an agent's commission amounts. Agents can see only their
// own figures; admins can query anyone.
func (h *CommissionHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(mux.Vars(r)["agent_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if role != models.RoleAdmin && userID != agentID {
		writeError(w, http.StatusForbidden, "Agents may only view their own earnings")
		return
	}

	earnings, err := h.commissionService.Earnings(r.Context(), agentID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, earnings)
}
