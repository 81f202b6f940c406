package handlers

import (
	"io"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

// 20 MB upload cap
const maxUploadBytes = 20 << 20

type DocumentHandler struct {
	storageService *services.StorageService
}

func NewDocumentHandler(storageService *services.StorageService) *DocumentHandler {
	return &DocumentHandler{storageService: storageService}
}

// Upload accepts a multipart form with "file", "entity_type" and "entity_id"
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.storageService.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "Document storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "File too large or malformed form")
		return
	}

	entityType := r.FormValue("entity_type")
	switch entityType {
	case "property", "rental", "tenant", "ticket":
	default:
		writeError(w, http.StatusBadRequest, "entity_type must be property, rental, tenant or ticket")
		return
	}
	entityID, err := strconv.Atoi(r.FormValue("entity_id"))
	if err != nil || entityID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid entity_id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	doc, err := h.storageService.Upload(r.Context(), entityType, entityID,
		header.Filename, contentType, header.Size, file, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) ListByEntity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entityID, err := strconv.Atoi(vars["entity_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entity ID")
		return
	}

	docs, err := h.storageService.ListByEntity(r.Context(), vars["entity_type"], entityID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Download streams the stored file
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	doc, body, err := h.storageService.Download(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	io.Copy(w, body)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.storageService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
