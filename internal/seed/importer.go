package seed

import (
	"context"
	"fmt"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"

	"github.com/rs/zerolog"
)

// ProductCreator creates products.
type ProductCreator interface {
	Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error)
}

// BlogCreator creates blog posts.
type BlogCreator interface {
	Create(ctx context.Context, req *model.BlogCreate) (*model.Blog, error)
}

// TestimonialCreator creates testimonials.
type TestimonialCreator interface {
	Create(ctx context.Context, req *model.TestimonialCreate) (*model.Testimonial, error)
}

// GalleryCreator creates gallery images.
type GalleryCreator interface {
	Create(ctx context.Context, req *model.GalleryCreate) (*model.GalleryImage, error)
}

// Targets are the services seeded entries are created through.
type Targets struct {
	Products     ProductCreator
	Blogs        BlogCreator
	Testimonials TestimonialCreator
	Gallery      GalleryCreator
}

// Result counts the entries created per collection.
type Result struct {
	Products     int
	Blogs        int
	Testimonials int
	Gallery      int
}

// Importer writes a bundle into collections that hold no documents yet.
type Importer struct {
	store   docstore.Store
	targets Targets
	logger  zerolog.Logger
}

// NewImporter creates a new Importer.
func NewImporter(store docstore.Store, targets Targets, logger zerolog.Logger) *Importer {
	return &Importer{
		store:   store,
		targets: targets,
		logger:  logger.With().Str("component", "seed-importer").Logger(),
	}
}

// Import creates the bundle's entries. A collection that already holds any
// document is left untouched.
func (i *Importer) Import(ctx context.Context, b *Bundle) (Result, error) {
	var (
		res Result
		err error
	)

	res.Products, err = importInto(ctx, i, docstore.Products, b.Products, func(ctx context.Context, req *model.ProductCreate) error {
		_, err := i.targets.Products.Create(ctx, req)
		return err
	})
	if err != nil {
		return res, err
	}

	res.Blogs, err = importInto(ctx, i, docstore.Blogs, b.Blogs, func(ctx context.Context, req *model.BlogCreate) error {
		_, err := i.targets.Blogs.Create(ctx, req)
		return err
	})
	if err != nil {
		return res, err
	}

	res.Testimonials, err = importInto(ctx, i, docstore.Testimonials, b.Testimonials, func(ctx context.Context, req *model.TestimonialCreate) error {
		_, err := i.targets.Testimonials.Create(ctx, req)
		return err
	})
	if err != nil {
		return res, err
	}

	res.Gallery, err = importInto(ctx, i, docstore.Gallery, b.Gallery, func(ctx context.Context, req *model.GalleryCreate) error {
		_, err := i.targets.Gallery.Create(ctx, req)
		return err
	})
	if err != nil {
		return res, err
	}

	i.logger.Info().
		Int("products", res.Products).
		Int("blogs", res.Blogs).
		Int("testimonials", res.Testimonials).
		Int("gallery", res.Gallery).
		Msg("seed import finished")

	return res, nil
}

func importInto[C any](ctx context.Context, i *Importer, collection string, items []C, create func(context.Context, *C) error) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	existing, err := i.store.Collection(collection).Find(ctx, docstore.Filter{}, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect %s: %w", collection, err)
	}
	if len(existing) > 0 {
		i.logger.Info().Str("collection", collection).Msg("collection not empty, skipping seed")
		return 0, nil
	}

	for n := range items {
		if err := create(ctx, &items[n]); err != nil {
			return n, fmt.Errorf("failed to seed %s entry %d: %w", collection, n, err)
		}
	}
	return len(items), nil
}
