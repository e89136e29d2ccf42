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

// contactService implements ContactService.
type contactService struct {
	contactRepo repository.Repository[model.ContactSubmission]
	notifier    notify.Notifier
	listLimit   int
	logger      zerolog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(
	contactRepo repository.Repository[model.ContactSubmission],
	notifier notify.Notifier,
	listLimit int,
	logger zerolog.Logger,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		listLimit:   listLimit,
		logger:      logger.With().Str("service", "contact").Logger(),
	}
}

// Submit stores a new contact message and forwards it to the clinic.
func (s *contactService) Submit(ctx context.Context, req *model.ContactCreate) (*model.ContactSubmission, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	submission := &model.ContactSubmission{
		ID:        uuid.NewString(),
		CreatedAt: model.Now(),
	}
	req.ApplyTo(submission)

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		s.logger.Error().Err(err).Str("email", submission.Email).Msg("failed to store contact submission")
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	s.logger.Info().Str("submission_id", submission.ID).Msg("contact submission received")

	if err := s.notifier.ContactReceived(ctx, submission); err != nil {
		s.logger.Warn().Err(err).Str("submission_id", submission.ID).Msg("failed to notify clinic of contact submission")
	}

	return submission, nil
}

// List retrieves contact messages.
func (s *contactService) List(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	limit = clampLimit(limit, s.listLimit)

	submissions, err := s.contactRepo.List(ctx, docstore.Filter{}, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list contact submissions")
		return nil, fmt.Errorf("failed to get contact submissions: %w", err)
	}

	return submissions, nil
}
