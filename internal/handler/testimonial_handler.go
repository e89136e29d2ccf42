package handler

import (
	"net/http"
	"strconv"

	"clinic-cms/internal/model"
	"clinic-cms/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// TestimonialHandler handles testimonial-related HTTP requests.
type TestimonialHandler struct {
	service service.TestimonialService
	logger  zerolog.Logger
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(service service.TestimonialService, logger zerolog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		logger:  logger.With().Str("handler", "testimonial").Logger(),
	}
}

// List handles GET /api/testimonials requests with an optional featured filter.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, model.NewValidationError("featured must be a boolean"), h.logger)
			return
		}
		featured = &v
	}

	testimonials, err := h.service.List(r.Context(), featured, limit)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, testimonials)
}

// Create handles POST /api/testimonials requests.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.TestimonialCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	testimonial, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, testimonial)
}

// Replace handles PUT /api/testimonials/{id} requests.
func (h *TestimonialHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req model.TestimonialCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	testimonial, err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, testimonial)
}

// Delete handles DELETE /api/testimonials/{id} requests.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Testimonial deleted successfully"})
}
