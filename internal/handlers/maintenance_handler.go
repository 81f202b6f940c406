package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	"github.com/gorilla/mux"
)

type MaintenanceHandler struct {
	ticketRepo *repositories.MaintenanceTicketRepository
}

func NewMaintenanceHandler(ticketRepo *repositories.MaintenanceTicketRepository) *MaintenanceHandler {
	return &MaintenanceHandler{ticketRepo: ticketRepo}
}

// CreateTicket is the staff path for filing a ticket (tenants use the portal)
func (h *MaintenanceHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.PropertyID == 0 {
		writeError(w, http.StatusBadRequest, "Title and property_id are required")
		return
	}

	ticket := &models.MaintenanceTicket{
		PropertyID:  req.PropertyID,
		RentalID:    req.RentalID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.TicketPriority(req.Priority),
	}
	if err := h.ticketRepo.Create(r.Context(), ticket); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *MaintenanceHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketRepo.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *MaintenanceHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	ticket, err := h.ticketRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ticket not found")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// UpdateStatus moves a ticket along its pipeline and optionally assigns it
func (h *MaintenanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req models.UpdateTicketStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := models.TicketStatus(req.Status)
	switch status {
	case models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if err := h.ticketRepo.UpdateStatus(r.Context(), id, status, req.AssignedToUserID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ticket, err := h.ticketRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ticket not found")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}
