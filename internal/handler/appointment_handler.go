package handler

import (
	"net/http"

	"clinic-cms/internal/model"
	"clinic-cms/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AppointmentHandler handles appointment-related HTTP requests.
type AppointmentHandler struct {
	service service.AppointmentService
	logger  zerolog.Logger
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(service service.AppointmentService, logger zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		logger:  logger.With().Str("handler", "appointment").Logger(),
	}
}

// List handles GET /api/appointments requests with an optional status filter.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	appointments, err := h.service.List(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, appointments)
}

// Create handles POST /api/appointments requests.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AppointmentCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	appt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, appt)
}

// UpdateStatus handles PUT /api/appointments/{id}/status requests. The new
// status is read from the status query parameter, or from a JSON body when
// the parameter is absent.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status := model.AppointmentStatus(r.URL.Query().Get("status"))
	if status == "" && r.ContentLength != 0 {
		var req model.StatusUpdate
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		status = req.Status
	}

	if err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Appointment status updated"})
}
