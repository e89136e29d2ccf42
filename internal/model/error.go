package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUnauthorised = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// DomainError is a client-facing failure carrying a stable code and a
// human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a formatted message.
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeValidation, fmt.Sprintf(format, args...))
}

// AsDomainError unwraps err into a DomainError if it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrAdminExists          = NewDomainError(ErrCodeConflict, "Admin already exists")
	ErrInvalidCredentials   = NewDomainError(ErrCodeUnauthorised, "Invalid credentials")
	ErrMissingToken         = NewDomainError(ErrCodeUnauthorised, "Missing bearer token")
	ErrInvalidToken         = NewDomainError(ErrCodeUnauthorised, "Invalid or expired token")
	ErrProductNotFound      = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrBlogNotFound         = NewDomainError(ErrCodeNotFound, "Blog not found")
	ErrTestimonialNotFound  = NewDomainError(ErrCodeNotFound, "Testimonial not found")
	ErrAppointmentNotFound  = NewDomainError(ErrCodeNotFound, "Appointment not found")
	ErrGalleryImageNotFound = NewDomainError(ErrCodeNotFound, "Image not found")
	ErrInvalidJSON          = NewDomainError(ErrCodeInvalidJSON, "Request body is not valid JSON")
)
