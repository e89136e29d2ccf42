package handler

import (
	"context"
	"net/http"

	"clinic-cms/internal/model"

	"github.com/rs/zerolog"
)

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness checks.
type HealthHandler struct {
	apiName string
	store   Pinger
	logger  zerolog.Logger
}

// HealthResponse is the readiness check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(apiName string, store Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		apiName: apiName,
		store:   store,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

// Root handles GET /api/ requests.
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: h.apiName})
}

// Ready handles GET /api/health requests by pinging the document store.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("store ping failed")
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
