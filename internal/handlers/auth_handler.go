package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Login authenticates staff. Accounts with 2FA enabled get a temp token and
// finish through the TOTP verify endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, step1, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrAccountSuspended):
			writeError(w, http.StatusForbidden, "Account suspended. Please contact administrator.")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if step1 != nil {
		writeJSON(w, http.StatusOK, step1)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout acknowledges session teardown. Tokens are stateless so the client
// discards its copy; the endpoint exists so the frontend has a hook to call.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
