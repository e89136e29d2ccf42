package model

import "time"

// DefaultBlogAuthor is used when a blog post is created without an author.
const DefaultBlogAuthor = "Dr. Swayambhu Ayurveda"

// Blog represents a stored blog post.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogCreate is the client-supplied shape for creating or replacing a blog post.
type BlogCreate struct {
	Title     *string `json:"title" validate:"required"`
	Slug      *string `json:"slug" validate:"required"`
	Category  *string `json:"category" validate:"required"`
	Excerpt   *string `json:"excerpt" validate:"required"`
	Content   *string `json:"content" validate:"required"`
	Image     *string `json:"image" validate:"required"`
	Author    string  `json:"author"`
	Published *bool   `json:"published"`
}

// ApplyTo overwrites every client-owned field of b, filling defaults.
func (c *BlogCreate) ApplyTo(b *Blog) {
	b.Title = deref(c.Title)
	b.Slug = deref(c.Slug)
	b.Category = deref(c.Category)
	b.Excerpt = deref(c.Excerpt)
	b.Content = deref(c.Content)
	b.Image = deref(c.Image)
	b.Author = c.Author
	if b.Author == "" {
		b.Author = DefaultBlogAuthor
	}
	b.Published = derefOr(c.Published, true)
}
