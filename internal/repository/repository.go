package repository

import (
	"context"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"

	"github.com/rs/zerolog"
)

// Repository defines typed data access over one document collection.
type Repository[T any] interface {
	// List retrieves up to limit entities matching filter in store order.
	List(ctx context.Context, filter docstore.Filter, limit int) ([]T, error)

	// FindOne retrieves the first entity matching filter, or nil if none does.
	FindOne(ctx context.Context, filter docstore.Filter) (*T, error)

	// GetByID retrieves an entity by its id, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*T, error)

	// Create inserts a new entity.
	Create(ctx context.Context, entity *T) error

	// Replace overwrites every field of the stored entity except id and
	// created_at. Returns false if no entity has the id.
	Replace(ctx context.Context, id string, entity *T) (bool, error)

	// SetFields updates only the given fields. Returns false if no entity
	// has the id.
	SetFields(ctx context.Context, id string, fields docstore.Document) (bool, error)

	// Delete removes an entity by id. Returns false if no entity had the id.
	Delete(ctx context.Context, id string) (bool, error)
}

// NewAdminRepository creates the admin repository.
func NewAdminRepository(store docstore.Store, logger zerolog.Logger) Repository[model.Admin] {
	return newCollectionRepository[model.Admin](store, docstore.Admins, logger)
}

// NewProductRepository creates the product repository.
func NewProductRepository(store docstore.Store, logger zerolog.Logger) Repository[model.Product] {
	return newCollectionRepository[model.Product](store, docstore.Products, logger)
}

// NewBlogRepository creates the blog repository.
func NewBlogRepository(store docstore.Store, logger zerolog.Logger) Repository[model.Blog] {
	return newCollectionRepository[model.Blog](store, docstore.Blogs, logger)
}

// NewTestimonialRepository creates the testimonial repository.
func NewTestimonialRepository(store docstore.Store, logger zerolog.Logger) Repository[model.Testimonial] {
	return newCollectionRepository[model.Testimonial](store, docstore.Testimonials, logger)
}

// NewAppointmentRepository creates the appointment repository.
func NewAppointmentRepository(store docstore.Store, logger zerolog.Logger) Repository[model.Appointment] {
	return newCollectionRepository[model.Appointment](store, docstore.Appointments, logger)
}

// NewGalleryRepository creates the gallery image repository.
func NewGalleryRepository(store docstore.Store, logger zerolog.Logger) Repository[model.GalleryImage] {
	return newCollectionRepository[model.GalleryImage](store, docstore.Gallery, logger)
}

// NewContactRepository creates the contact submission repository.
func NewContactRepository(store docstore.Store, logger zerolog.Logger) Repository[model.ContactSubmission] {
	return newCollectionRepository[model.ContactSubmission](store, docstore.ContactSubmissions, logger)
}
