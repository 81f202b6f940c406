package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	"github.com/gorilla/mux"
)

// Settings an admin may change. Anything else 404s so typos don't create
// orphan rows.
var editableSettings = map[string]bool{
	"renewal_window_days":        true,
	"default_commission_rate":    true,
	"online_payment_enabled":     true,
	"online_payment_fee_percent": true,
}

type SystemSettingHandler struct {
	settingsRepo *repositories.SystemSettingRepository
	adminLogs    *repositories.AdminActionLogRepository
}

func NewSystemSettingHandler(settingsRepo *repositories.SystemSettingRepository, adminLogs *repositories.AdminActionLogRepository) *SystemSettingHandler {
	return &SystemSettingHandler{settingsRepo: settingsRepo, adminLogs: adminLogs}
}

func (h *SystemSettingHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *SystemSettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	setting, err := h.settingsRepo.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "Setting not found")
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *SystemSettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if !editableSettings[key] {
		writeError(w, http.StatusNotFound, "Unknown setting")
		return
	}

	var req models.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SettingValue == "" {
		writeError(w, http.StatusBadRequest, "setting_value is required")
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.settingsRepo.Update(r.Context(), key, req.SettingValue, adminID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ip := getIPAddress(r)
	h.adminLogs.Create(r.Context(), &models.AdminActionLog{
		AdminUserID: adminID,
		ActionType:  "update_setting",
		TargetType:  "setting",
		Description: fmt.Sprintf("Set %s=%s", key, req.SettingValue),
		IPAddress:   &ip,
	})

	setting, err := h.settingsRepo.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, setting)
}
