package service

import (
	"context"
	"fmt"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"
	"clinic-cms/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// testimonialService implements TestimonialService.
type testimonialService struct {
	testimonialRepo repository.Repository[model.Testimonial]
	listLimit       int
	logger          zerolog.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonialRepo repository.Repository[model.Testimonial], listLimit int, logger zerolog.Logger) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		listLimit:       listLimit,
		logger:          logger.With().Str("service", "testimonial").Logger(),
	}
}

// List retrieves testimonials. A non-nil featured restricts the result.
func (s *testimonialService) List(ctx context.Context, featured *bool, limit int) ([]model.Testimonial, error) {
	limit = clampLimit(limit, s.listLimit)

	filter := docstore.Filter{}
	if featured != nil {
		filter["featured"] = *featured
	}

	testimonials, err := s.testimonialRepo.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list testimonials")
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}

	s.logger.Debug().Int("count", len(testimonials)).Msg("retrieved testimonials")

	return testimonials, nil
}

// Create stores a new testimonial.
func (s *testimonialService) Create(ctx context.Context, req *model.TestimonialCreate) (*model.Testimonial, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	testimonial := &model.Testimonial{
		ID:        uuid.NewString(),
		CreatedAt: model.Now(),
	}
	req.ApplyTo(testimonial)

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		s.logger.Error().Err(err).Str("name", testimonial.Name).Msg("failed to create testimonial")
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.logger.Info().Str("testimonial_id", testimonial.ID).Msg("testimonial created")

	return testimonial, nil
}

// Replace overwrites the client-owned fields of an existing testimonial.
func (s *testimonialService) Replace(ctx context.Context, id string, req *model.TestimonialCreate) (*model.Testimonial, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("testimonial_id", id).Msg("failed to get testimonial by ID")
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	if testimonial == nil {
		return nil, model.ErrTestimonialNotFound
	}
	req.ApplyTo(testimonial)

	found, err := s.testimonialRepo.Replace(ctx, id, testimonial)
	if err != nil {
		s.logger.Error().Err(err).Str("testimonial_id", id).Msg("failed to replace testimonial")
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	if !found {
		return nil, model.ErrTestimonialNotFound
	}

	s.logger.Info().Str("testimonial_id", id).Msg("testimonial updated")

	return testimonial, nil
}

// Delete removes a testimonial.
func (s *testimonialService) Delete(ctx context.Context, id string) error {
	deleted, err := s.testimonialRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("testimonial_id", id).Msg("failed to delete testimonial")
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if !deleted {
		return model.ErrTestimonialNotFound
	}

	s.logger.Info().Str("testimonial_id", id).Msg("testimonial deleted")

	return nil
}
