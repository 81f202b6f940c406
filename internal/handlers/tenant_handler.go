package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estate-backend/internal/auth"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	"github.com/gorilla/mux"
)

// TenantHandler is the staff-side management of tenant accounts
type TenantHandler struct {
	tenantRepo *repositories.TenantRepository
}

func NewTenantHandler(tenantRepo *repositories.TenantRepository) *TenantHandler {
	return &TenantHandler{tenantRepo: tenantRepo}
}

func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" || len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "Name, phone and a password of at least 8 characters are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	tenant := &models.Tenant{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		IDNumber:     req.IDNumber,
		PasswordHash: hash,
	}
	if err := h.tenantRepo.Create(r.Context(), tenant); err != nil {
		writeError(w, http.StatusConflict, "Phone number already registered")
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenantRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Tenant not found")
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	var req models.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenant, err := h.tenantRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Tenant not found")
		return
	}

	tenant.Name = req.Name
	tenant.Phone = req.Phone
	tenant.Email = req.Email
	tenant.IDNumber = req.IDNumber
	if err := h.tenantRepo.Update(r.Context(), tenant); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	if err := h.tenantRepo.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusConflict, "Tenant has linked rentals and cannot be deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
