package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"clinic-cms/internal/model"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encode failure cannot change the response.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps err to a status code and writes the error body. Domain
// errors keep their message; anything else is logged and reported as a
// generic internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	reqID := chimw.GetReqID(r.Context())

	de, ok := model.AsDomainError(err)
	if !ok {
		logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", reqID).
			Msg("handler error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:         model.ErrCodeInternal,
			Detail:        "Internal server error",
			CorrelationID: reqID,
		})
		return
	}

	status := statusFor(de.Code)
	logger.Debug().
		Str("code", de.Code).
		Str("detail", de.Message).
		Int("status", status).
		Str("request_id", reqID).
		Msg("request rejected")

	writeJSON(w, status, model.ErrorResponse{
		Error:         de.Code,
		Detail:        de.Message,
		CorrelationID: reqID,
	})
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeConflict, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into dst. Unknown fields are ignored.
// Malformed JSON yields ErrInvalidJSON; a well-formed body with a wrongly
// typed field yields a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return model.NewValidationError("request body must be a JSON object")
	case errors.As(err, &typeErr):
		return model.NewValidationError("%s must be %s", typeErr.Field, jsonTypeName(typeErr.Type))
	case errors.As(err, &maxErr):
		return model.NewValidationError("request body exceeds %d bytes", maxErr.Limit)
	case errors.Is(err, io.EOF):
		return model.NewValidationError("request body is required")
	default:
		return model.ErrInvalidJSON
	}
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// queryLimit parses the optional limit query parameter. Zero means no
// explicit limit.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, model.NewValidationError("limit must be a positive integer")
	}
	return limit, nil
}
