package model

import "time"

// GalleryCategory groups gallery images on the website.
type GalleryCategory string

const (
	GalleryClinic          GalleryCategory = "clinic"
	GalleryPanchakarma     GalleryCategory = "panchakarma"
	GalleryProducts        GalleryCategory = "products"
	GalleryTransformations GalleryCategory = "transformations"
)

// GalleryImage represents a stored gallery image.
type GalleryImage struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    GalleryCategory `json:"category"`
	Image       string          `json:"image"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GalleryCreate is the client-supplied shape for adding a gallery image.
type GalleryCreate struct {
	Title       *string          `json:"title" validate:"required"`
	Category    *GalleryCategory `json:"category" validate:"required,oneof=clinic panchakarma products transformations"`
	Image       *string          `json:"image" validate:"required"`
	Description *string          `json:"description"`
}

// ApplyTo copies the client-owned fields onto g.
func (c *GalleryCreate) ApplyTo(g *GalleryImage) {
	g.Title = deref(c.Title)
	g.Category = deref(c.Category)
	g.Image = deref(c.Image)
	g.Description = c.Description
}
