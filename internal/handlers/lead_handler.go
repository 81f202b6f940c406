package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	"github.com/gorilla/mux"
)

type LeadHandler struct {
	leadRepo *repositories.LeadRepository
}

func NewLeadHandler(leadRepo *repositories.LeadRepository) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo}
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "Name and phone are required")
		return
	}

	lead := &models.Lead{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Interest:   req.Interest,
		PropertyID: req.PropertyID,
		Notes:      req.Notes,
	}
	if err := h.leadRepo.Create(r.Context(), lead); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	agentID := 0
	if s := q.Get("agent_id"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			agentID = n
		}
	}

	leads, err := h.leadRepo.List(r.Context(), q.Get("status"), agentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := h.leadRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var req models.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	lead.Name = req.Name
	lead.Phone = req.Phone
	lead.Email = req.Email
	lead.Interest = req.Interest
	lead.PropertyID = req.PropertyID
	if req.Status != "" {
		lead.Status = models.LeadStatus(req.Status)
	}
	lead.Notes = req.Notes

	if err := h.leadRepo.Update(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// AssignLead hands a lead to an agent
func (h *LeadHandler) AssignLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var req models.AssignLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.leadRepo.Assign(r.Context(), id, req.AgentID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.leadRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	if err := h.leadRepo.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
