package handler

import (
	"net/http"

	"clinic-cms/internal/model"
	"clinic-cms/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	service service.BlogService
	logger  zerolog.Logger
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(service service.BlogService, logger zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		logger:  logger.With().Str("handler", "blog").Logger(),
	}
}

// List handles GET /api/blogs requests.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	blogs, err := h.service.List(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// GetBySlug handles GET /api/blogs/{slug} requests.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Create handles POST /api/blogs requests.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BlogCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	blog, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Replace handles PUT /api/blogs/{id} requests.
func (h *BlogHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req model.BlogCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	blog, err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/{id} requests.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Blog deleted successfully"})
}
