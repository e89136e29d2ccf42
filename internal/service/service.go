package service

import (
	"context"

	"clinic-cms/internal/model"
)

// TokenIssuer signs admin tokens.
type TokenIssuer interface {
	Issue(email, id string) (string, error)
}

// AdminService defines admin account operations.
type AdminService interface {
	// Register creates a new admin and returns a token for it.
	Register(ctx context.Context, req *model.AdminRegistration) (*model.AuthResponse, error)

	// Login verifies credentials and returns a fresh token.
	Login(ctx context.Context, req *model.AdminLogin) (*model.AuthResponse, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves products, optionally restricted to a category.
	List(ctx context.Context, category string, limit int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create stores a new product.
	Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error)

	// Replace overwrites the client-owned fields of an existing product.
	Replace(ctx context.Context, id string, req *model.ProductCreate) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}

// BlogService defines operations for blog post management.
type BlogService interface {
	// List retrieves published posts, optionally restricted to a category.
	List(ctx context.Context, category string, limit int) ([]model.Blog, error)

	// GetBySlug retrieves a single post by its slug.
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)

	// Create stores a new post.
	Create(ctx context.Context, req *model.BlogCreate) (*model.Blog, error)

	// Replace overwrites the client-owned fields of an existing post.
	Replace(ctx context.Context, id string, req *model.BlogCreate) (*model.Blog, error)

	// Delete removes a post.
	Delete(ctx context.Context, id string) error
}

// TestimonialService defines operations for testimonial management.
type TestimonialService interface {
	// List retrieves testimonials. A non-nil featured restricts the result.
	List(ctx context.Context, featured *bool, limit int) ([]model.Testimonial, error)

	// Create stores a new testimonial.
	Create(ctx context.Context, req *model.TestimonialCreate) (*model.Testimonial, error)

	// Replace overwrites the client-owned fields of an existing testimonial.
	Replace(ctx context.Context, id string, req *model.TestimonialCreate) (*model.Testimonial, error)

	// Delete removes a testimonial.
	Delete(ctx context.Context, id string) error
}

// AppointmentService defines operations for appointment requests.
type AppointmentService interface {
	// List retrieves appointments, optionally restricted to a status.
	List(ctx context.Context, status string, limit int) ([]model.Appointment, error)

	// Create books a new pending appointment.
	Create(ctx context.Context, req *model.AppointmentCreate) (*model.Appointment, error)

	// UpdateStatus moves an appointment to a new status.
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}

// GalleryService defines operations for gallery images.
type GalleryService interface {
	// List retrieves images, optionally restricted to a category.
	List(ctx context.Context, category string, limit int) ([]model.GalleryImage, error)

	// Create stores a new image.
	Create(ctx context.Context, req *model.GalleryCreate) (*model.GalleryImage, error)

	// Delete removes an image.
	Delete(ctx context.Context, id string) error
}

// ContactService defines operations for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message.
	Submit(ctx context.Context, req *model.ContactCreate) (*model.ContactSubmission, error)

	// List retrieves contact messages.
	List(ctx context.Context, limit int) ([]model.ContactSubmission, error)
}

// clampLimit applies the configured list ceiling. A non-positive or larger
// request falls back to the ceiling.
func clampLimit(limit, ceiling int) int {
	if limit <= 0 || limit > ceiling {
		return ceiling
	}
	return limit
}
