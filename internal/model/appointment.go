package model

import "time"

// AppointmentType is the kind of visit requested.
type AppointmentType string

const (
	AppointmentConsultation      AppointmentType = "consultation"
	AppointmentVideoConsultation AppointmentType = "video_consultation"
	AppointmentPanchakarma       AppointmentType = "panchakarma"
)

// AppointmentStatus tracks an appointment through the clinic workflow.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the recognised statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a stored appointment request.
type Appointment struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Email                 string            `json:"email"`
	Phone                 string            `json:"phone"`
	AppointmentType       AppointmentType   `json:"appointment_type"`
	PreferredDate         string            `json:"preferred_date"`
	PreferredTime         string            `json:"preferred_time"`
	Condition             string            `json:"condition"`
	Message               *string           `json:"message"`
	Status                AppointmentStatus `json:"status"`
	GoogleCalendarEventID *string           `json:"google_calendar_event_id"`
	CreatedAt             time.Time         `json:"created_at"`
}

// AppointmentCreate is the client-supplied shape for booking an appointment.
type AppointmentCreate struct {
	Name            *string          `json:"name" validate:"required"`
	Email           *string          `json:"email" validate:"required,email"`
	Phone           *string          `json:"phone" validate:"required"`
	AppointmentType *AppointmentType `json:"appointment_type" validate:"required,oneof=consultation video_consultation panchakarma"`
	PreferredDate   *string          `json:"preferred_date" validate:"required"`
	PreferredTime   *string          `json:"preferred_time" validate:"required"`
	Condition       *string          `json:"condition" validate:"required"`
	Message         *string          `json:"message"`
}

// ApplyTo copies the client-owned fields onto a.
func (c *AppointmentCreate) ApplyTo(a *Appointment) {
	a.Name = deref(c.Name)
	a.Email = deref(c.Email)
	a.Phone = deref(c.Phone)
	a.AppointmentType = deref(c.AppointmentType)
	a.PreferredDate = deref(c.PreferredDate)
	a.PreferredTime = deref(c.PreferredTime)
	a.Condition = deref(c.Condition)
	a.Message = c.Message
}

// StatusUpdate is the payload of an appointment status transition.
type StatusUpdate struct {
	Status AppointmentStatus `json:"status"`
}
