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

// galleryService implements GalleryService.
type galleryService struct {
	galleryRepo repository.Repository[model.GalleryImage]
	listLimit   int
	logger      zerolog.Logger
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo repository.Repository[model.GalleryImage], listLimit int, logger zerolog.Logger) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		listLimit:   listLimit,
		logger:      logger.With().Str("service", "gallery").Logger(),
	}
}

func (s *galleryService) List(ctx context.Context, category string, limit int) ([]model.GalleryImage, error) {
	limit = clampLimit(limit, s.listLimit)

	filter := docstore.Filter{}
	if category != "" {
		filter["category"] = category
	}

	images, err := s.galleryRepo.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list gallery images")
		return nil, fmt.Errorf("failed to get gallery images: %w", err)
	}

	return images, nil
}

func (s *galleryService) Create(ctx context.Context, req *model.GalleryCreate) (*model.GalleryImage, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	image := &model.GalleryImage{
		ID:        uuid.NewString(),
		CreatedAt: model.Now(),
	}
	req.ApplyTo(image)

	if err := s.galleryRepo.Create(ctx, image); err != nil {
		s.logger.Error().Err(err).Str("title", image.Title).Msg("failed to create gallery image")
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}

	s.logger.Info().
		Str("image_id", image.ID).
		Str("category", string(image.Category)).
		Msg("gallery image created")

	return image, nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("image_id", id).Msg("failed to delete gallery image")
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if !deleted {
		return model.ErrGalleryImageNotFound
	}

	s.logger.Info().Str("image_id", id).Msg("gallery image deleted")

	return nil
}
