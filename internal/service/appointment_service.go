package service

import (
	"context"
	"fmt"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"
	"clinic-cms/internal/notify"
	"clinic-cms/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// appointmentService implements AppointmentService.
type appointmentService struct {
	appointmentRepo repository.Repository[model.Appointment]
	notifier        notify.Notifier
	listLimit       int
	logger          zerolog.Logger
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(
	appointmentRepo repository.Repository[model.Appointment],
	notifier notify.Notifier,
	listLimit int,
	logger zerolog.Logger,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		listLimit:       listLimit,
		logger:          logger.With().Str("service", "appointment").Logger(),
	}
}

// List retrieves appointments, optionally restricted to a status.
func (s *appointmentService) List(ctx context.Context, status string, limit int) ([]model.Appointment, error) {
	limit = clampLimit(limit, s.listLimit)

	filter := docstore.Filter{}
	if status != "" {
		if !model.AppointmentStatus(status).Valid() {
			return nil, model.NewValidationError("status must be one of: pending, confirmed, completed, cancelled")
		}
		filter["status"] = status
	}

	appointments, err := s.appointmentRepo.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("status", status).Msg("failed to list appointments")
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	s.logger.Debug().Int("count", len(appointments)).Str("status", status).Msg("retrieved appointments")

	return appointments, nil
}

// Create books a new pending appointment and notifies the clinic. A failed
// notification does not fail the booking.
func (s *appointmentService) Create(ctx context.Context, req *model.AppointmentCreate) (*model.Appointment, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		ID:        uuid.NewString(),
		Status:    model.StatusPending,
		CreatedAt: model.Now(),
	}
	req.ApplyTo(appt)

	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		s.logger.Error().Err(err).Str("email", appt.Email).Msg("failed to create appointment")
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", appt.ID).
		Str("type", string(appt.AppointmentType)).
		Str("preferred_date", appt.PreferredDate).
		Msg("appointment created")

	if err := s.notifier.AppointmentBooked(ctx, appt); err != nil {
		s.logger.Warn().Err(err).Str("appointment_id", appt.ID).Msg("failed to notify clinic of appointment")
	}

	return appt, nil
}

// UpdateStatus moves an appointment to a new status.
func (s *appointmentService) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	if status == "" {
		return model.NewValidationError("status is required")
	}
	if !status.Valid() {
		return model.NewValidationError("status must be one of: pending, confirmed, completed, cancelled")
	}

	found, err := s.appointmentRepo.SetFields(ctx, id, docstore.Document{"status": string(status)})
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id).Msg("failed to update appointment status")
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if !found {
		s.logger.Debug().Str("appointment_id", id).Msg("appointment not found")
		return model.ErrAppointmentNotFound
	}

	s.logger.Info().
		Str("appointment_id", id).
		Str("status", string(status)).
		Msg("appointment status updated")

	return nil
}
