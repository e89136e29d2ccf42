package handler

import (
	"mime"
	"net/http"

	"clinic-cms/internal/model"
	"clinic-cms/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles admin registration and login.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Register handles POST /api/admin/register requests.
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.AdminRegistration
	if isJSON(r) {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
	} else {
		if err := parseForm(w, r); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		req = model.AdminRegistration{
			Email:    formValue(r, "email"),
			Password: formValue(r, "password"),
			Name:     formValue(r, "name"),
		}
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLogin
	if isJSON(r) {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
	} else {
		if err := parseForm(w, r); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		req = model.AdminLogin{
			Email:    formValue(r, "email"),
			Password: formValue(r, "password"),
		}
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// isJSON reports whether the request declares a JSON body. Form encoding is
// the default for admin endpoints.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && err != http.ErrNotMultipart {
		return model.NewValidationError("invalid form body")
	}
	return nil
}

// formValue returns the first value posted for key, or nil when the field
// was not sent. An empty value is returned as an empty string.
func formValue(r *http.Request, key string) *string {
	vs := r.PostForm[key]
	if len(vs) == 0 {
		return nil
	}
	return &vs[0]
}
