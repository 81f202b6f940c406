package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userService *services.UserService
	adminLogs   *repositories.AdminActionLogRepository
}

func NewUserHandler(userService *services.UserService, adminLogs *repositories.AdminActionLogRepository) *UserHandler {
	return &UserHandler{userService: userService, adminLogs: adminLogs}
}

// logAction records an admin action; failures are deliberately ignored so
// auditing never blocks the request
func (h *UserHandler) logAction(r *http.Request, actionType, targetType string, targetID int, description string) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return
	}
	ip := getIPAddress(r)
	h.adminLogs.Create(r.Context(), &models.AdminActionLog{
		AdminUserID: adminID,
		ActionType:  actionType,
		TargetType:  targetType,
		TargetID:    &targetID,
		Description: description,
		IPAddress:   &ip,
	})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logAction(r, "create_user", "user", user.ID, fmt.Sprintf("Created %s account for %s", user.Role, user.Email))
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logAction(r, "update_user", "user", id, fmt.Sprintf("Updated account %s", user.Email))
	writeJSON(w, http.StatusOK, user)
}

// SetActive suspends or reinstates a staff account
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// An admin cannot suspend their own account
	if adminID, ok := middleware.GetUserIDFromContext(r.Context()); ok && adminID == id && !req.IsActive {
		writeError(w, http.StatusBadRequest, "Cannot suspend your own account")
		return
	}

	if err := h.userService.SetActive(r.Context(), id, req.IsActive); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	action := "suspend_user"
	if req.IsActive {
		action = "reinstate_user"
	}
	h.logAction(r, action, "user", id, fmt.Sprintf("Set is_active=%t", req.IsActive))
	writeJSON(w, http.StatusOK, map[string]bool{"is_active": req.IsActive})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if adminID, ok := middleware.GetUserIDFromContext(r.Context()); ok && adminID == id {
		writeError(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logAction(r, "delete_user", "user", id, "Deleted staff account")
	w.WriteHeader(http.StatusNoContent)
}
