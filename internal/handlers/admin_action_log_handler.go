package handlers

import (
	"net/http"
	"strconv"

	"estate-backend/internal/repositories"
)

type AdminActionLogHandler struct {
	logRepo *repositories.AdminActionLogRepository
}

func NewAdminActionLogHandler(logRepo *repositories.AdminActionLogRepository) *AdminActionLogHandler {
	return &AdminActionLogHandler{logRepo: logRepo}
}

func (h *AdminActionLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	logs, err := h.logRepo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
