package handlers

import (
	"encoding/json"
	"net/http"

	"estate-backend/internal/auth"
	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

type TOTPHandler struct {
	totpService *services.TOTPService
	userService *services.UserService
	jwtManager  *auth.JWTManager
}

func NewTOTPHandler(totpService *services.TOTPService, userService *services.UserService, jwtManager *auth.JWTManager) *TOTPHandler {
	return &TOTPHandler{
		totpService: totpService,
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Setup generates a fresh secret and QR code. 2FA stays off until the first
// code verifies through Enable.
func (h *TOTPHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	setup, err := h.totpService.GenerateSetup(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate 2FA setup")
		return
	}
	writeJSON(w, http.StatusOK, setup)
}

// Enable verifies the first code and returns one-time backup codes
func (h *TOTPHandler) Enable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	codes, err := h.totpService.VerifyAndEnable(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"enabled":      true,
		"backup_codes": codes,
		"message":      "Store these backup codes safely. They will not be shown again.",
	})
}

func (h *TOTPHandler) Disable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.TOTPDisableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.totpService.Disable(r.Context(), userID, req.Password, req.Code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": false})
}

// VerifyLogin is login step 2: temp token plus TOTP or backup code
func (h *TOTPHandler) VerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, err := h.jwtManager.ValidateTempToken(req.TempToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired temporary token")
		return
	}

	ok, err := h.totpService.Verify(r.Context(), claims.UserID, req.Code)
	if err != nil || !ok {
		writeError(w, http.StatusUnauthorized, "Invalid verification code")
		return
	}

	resp, err := h.userService.CompleteTOTPLogin(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
