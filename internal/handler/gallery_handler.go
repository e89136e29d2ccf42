package handler

import (
	"net/http"

	"clinic-cms/internal/model"
	"clinic-cms/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// GalleryHandler handles gallery-related HTTP requests.
type GalleryHandler struct {
	service service.GalleryService
	logger  zerolog.Logger
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(service service.GalleryService, logger zerolog.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		logger:  logger.With().Str("handler", "gallery").Logger(),
	}
}

// List handles GET /api/gallery requests with an optional category filter.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	images, err := h.service.List(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, images)
}

// Create handles POST /api/gallery requests.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.GalleryCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	image, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, image)
}

// Delete handles DELETE /api/gallery/{id} requests.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Image deleted successfully"})
}
