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

// productService implements ProductService.
type productService struct {
	productRepo repository.Repository[model.Product]
	listLimit   int
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.Repository[model.Product], listLimit int, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		listLimit:   listLimit,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products, optionally restricted to a category.
func (s *productService) List(ctx context.Context, category string, limit int) ([]model.Product, error) {
	limit = clampLimit(limit, s.listLimit)

	filter := docstore.Filter{}
	if category != "" {
		filter["category"] = category
	}

	products, err := s.productRepo.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", category).
			Int("limit", limit).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", category).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:        uuid.NewString(),
		CreatedAt: model.Now(),
	}
	req.ApplyTo(product)

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// Replace overwrites the client-owned fields of an existing product.
func (s *productService) Replace(ctx context.Context, id string, req *model.ProductCreate) (*model.Product, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(product)

	found, err := s.productRepo.Replace(ctx, id, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to replace product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !found {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}
