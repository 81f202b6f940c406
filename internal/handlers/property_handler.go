package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
	rentalService   *services.RentalService
}

func NewPropertyHandler(propertyService *services.PropertyService, rentalService *services.RentalService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, rentalService: rentalService}
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.PropertyFilter{
		City:         q.Get("city"),
		PropertyType: q.Get("type"),
		Status:       q.Get("status"),
	}
	if agentID := q.Get("agent_id"); agentID != "" {
		if n, err := strconv.Atoi(agentID); err == nil {
			filter.AgentID = n
		}
	}

	properties, err := h.propertyService.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// ListAvailable is the public listing endpoint, served from cache when warm
func (h *PropertyHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	data, err := h.propertyService.ListAvailable(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	property, err := h.propertyService.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// GetPropertyRentals returns the property's booking history with derived statuses
func (h *PropertyHandler) GetPropertyRentals(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	rentals, err := h.rentalService.ListByProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// SetStatus publishes/unpublishes a listing or marks it rented/sold
func (h *PropertyHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.propertyService.SetStatus(r.Context(), id, models.PropertyStatus(req.Status))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.propertyService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusConflict, "Property has linked rentals and cannot be deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
