package model

import "time"

// Testimonial defaults.
const (
	DefaultTestimonialRating   = 5
	DefaultTestimonialLocation = "Kolhapur"
)

// Testimonial represents a stored patient testimonial.
type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Condition   string    `json:"condition"`
	Testimonial string    `json:"testimonial"`
	Image       *string   `json:"image"`
	Rating      int       `json:"rating"`
	Location    string    `json:"location"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// TestimonialCreate is the client-supplied shape for creating or replacing a testimonial.
type TestimonialCreate struct {
	Name        *string `json:"name" validate:"required"`
	Condition   *string `json:"condition" validate:"required"`
	Testimonial *string `json:"testimonial" validate:"required"`
	Image       *string `json:"image"`
	Rating      *int    `json:"rating"`
	Location    string  `json:"location"`
	Featured    *bool   `json:"featured"`
}

// ApplyTo overwrites every client-owned field of t, filling defaults.
func (c *TestimonialCreate) ApplyTo(t *Testimonial) {
	t.Name = deref(c.Name)
	t.Condition = deref(c.Condition)
	t.Testimonial = deref(c.Testimonial)
	t.Image = c.Image
	t.Rating = derefOr(c.Rating, DefaultTestimonialRating)
	t.Location = c.Location
	if t.Location == "" {
		t.Location = DefaultTestimonialLocation
	}
	t.Featured = derefOr(c.Featured, false)
}
