package model

import "time"

// Product represents a stored product in the clinic catalogue.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Uses        string    `json:"uses"`
	Benefits    string    `json:"benefits"`
	HowToUse    string    `json:"how_to_use"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductCreate is the client-supplied shape for creating or replacing a product.
type ProductCreate struct {
	Name        *string  `json:"name" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Ingredients *string  `json:"ingredients" validate:"required"`
	Uses        *string  `json:"uses" validate:"required"`
	Benefits    *string  `json:"benefits" validate:"required"`
	HowToUse    *string  `json:"how_to_use" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       *string  `json:"image" validate:"required"`
	InStock     *bool    `json:"in_stock"`
}

// ApplyTo overwrites every client-owned field of p, filling defaults.
func (c *ProductCreate) ApplyTo(p *Product) {
	p.Name = deref(c.Name)
	p.Category = deref(c.Category)
	p.Description = deref(c.Description)
	p.Ingredients = deref(c.Ingredients)
	p.Uses = deref(c.Uses)
	p.Benefits = deref(c.Benefits)
	p.HowToUse = deref(c.HowToUse)
	p.Price = derefOr(c.Price, 0)
	p.Image = deref(c.Image)
	p.InStock = derefOr(c.InStock, true)
}

func derefOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func deref[T any](v *T) T {
	var zero T
	return derefOr(v, zero)
}
