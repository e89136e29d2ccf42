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

// blogService implements BlogService.
type blogService struct {
	blogRepo  repository.Repository[model.Blog]
	listLimit int
	logger    zerolog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(blogRepo repository.Repository[model.Blog], listLimit int, logger zerolog.Logger) BlogService {
	return &blogService{
		blogRepo:  blogRepo,
		listLimit: listLimit,
		logger:    logger.With().Str("service", "blog").Logger(),
	}
}

// List retrieves published posts only.
func (s *blogService) List(ctx context.Context, category string, limit int) ([]model.Blog, error) {
	limit = clampLimit(limit, s.listLimit)

	filter := docstore.Filter{"published": true}
	if category != "" {
		filter["category"] = category
	}

	blogs, err := s.blogRepo.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list blogs")
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}

	s.logger.Debug().Int("count", len(blogs)).Str("category", category).Msg("retrieved blogs")

	return blogs, nil
}

// GetBySlug retrieves a post by slug regardless of its published flag.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	blog, err := s.blogRepo.FindOne(ctx, docstore.Filter{"slug": slug})
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to get blog by slug")
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	if blog == nil {
		s.logger.Debug().Str("slug", slug).Msg("blog not found")
		return nil, model.ErrBlogNotFound
	}

	return blog, nil
}

// Create stores a new post.
func (s *blogService) Create(ctx context.Context, req *model.BlogCreate) (*model.Blog, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	blog := &model.Blog{
		ID:        uuid.NewString(),
		CreatedAt: model.Now(),
	}
	req.ApplyTo(blog)

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		s.logger.Error().Err(err).Str("slug", blog.Slug).Msg("failed to create blog")
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.logger.Info().Str("blog_id", blog.ID).Str("slug", blog.Slug).Msg("blog created")

	return blog, nil
}

// Replace overwrites the client-owned fields of an existing post.
func (s *blogService) Replace(ctx context.Context, id string, req *model.BlogCreate) (*model.Blog, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("blog_id", id).Msg("failed to get blog by ID")
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	if blog == nil {
		return nil, model.ErrBlogNotFound
	}
	req.ApplyTo(blog)

	found, err := s.blogRepo.Replace(ctx, id, blog)
	if err != nil {
		s.logger.Error().Err(err).Str("blog_id", id).Msg("failed to replace blog")
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	if !found {
		return nil, model.ErrBlogNotFound
	}

	s.logger.Info().Str("blog_id", id).Msg("blog updated")

	return blog, nil
}

// Delete removes a post.
func (s *blogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.blogRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("blog_id", id).Msg("failed to delete blog")
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if !deleted {
		return model.ErrBlogNotFound
	}

	s.logger.Info().Str("blog_id", id).Msg("blog deleted")

	return nil
}
