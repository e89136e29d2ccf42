// Package docstore provides a small document-store abstraction over flat,
// schema-less documents grouped into named collections. Documents are keyed
// by their "id" field.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

// Collection names used by the application.
const (
	Admins             = "admins"
	Products           = "products"
	Blogs              = "blogs"
	Testimonials       = "testimonials"
	Appointments       = "appointments"
	Gallery            = "gallery"
	ContactSubmissions = "contact_submissions"
)

// Collections lists every collection the application uses.
var Collections = []string{
	Admins,
	Products,
	Blogs,
	Testimonials,
	Appointments,
	Gallery,
	ContactSubmissions,
}

// IDField is the primary key of every document.
const IDField = "id"

// Document is a flat JSON-like document.
type Document map[string]any

// Filter selects documents whose top-level fields equal the given values.
// An empty filter matches every document.
type Filter map[string]any

// ErrMissingID is returned when inserting a document without a string id.
var ErrMissingID = errors.New("docstore: document has no id")

// ErrUnknownCollection is returned for collection names outside Collections.
var ErrUnknownCollection = errors.New("docstore: unknown collection")

// Collection defines the operations available on a single collection.
type Collection interface {
	// Find returns up to limit documents matching filter in insertion order.
	Find(ctx context.Context, filter Filter, limit int) ([]Document, error)

	// FindOne returns the first document matching filter, or nil if none does.
	FindOne(ctx context.Context, filter Filter) (Document, error)

	// InsertOne stores a new document.
	InsertOne(ctx context.Context, doc Document) error

	// UpdateOne sets the given fields on the first document matching filter
	// and reports how many documents matched.
	UpdateOne(ctx context.Context, filter Filter, set Document) (int64, error)

	// DeleteOne removes the first document matching filter and reports how
	// many documents were deleted.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
}

// Store is a process-wide handle to a document store. It is opened once at
// startup and closed at shutdown.
type Store interface {
	// Collection returns a handle to the named collection.
	Collection(name string) Collection

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close(ctx context.Context) error
}

// ByID returns a filter matching the document with the given id.
func ByID(id string) Filter {
	return Filter{IDField: id}
}

func knownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

func documentID(doc Document) (string, error) {
	id, ok := doc[IDField].(string)
	if !ok || id == "" {
		return "", ErrMissingID
	}
	return id, nil
}

// invalidCollection is returned for names outside Collections; every
// operation fails with ErrUnknownCollection.
type invalidCollection struct {
	name string
}

func (c invalidCollection) err() error {
	return fmt.Errorf("%w: %s", ErrUnknownCollection, c.name)
}

func (c invalidCollection) Find(context.Context, Filter, int) ([]Document, error) {
	return nil, c.err()
}

func (c invalidCollection) FindOne(context.Context, Filter) (Document, error) {
	return nil, c.err()
}

func (c invalidCollection) InsertOne(context.Context, Document) error {
	return c.err()
}

func (c invalidCollection) UpdateOne(context.Context, Filter, Document) (int64, error) {
	return 0, c.err()
}

func (c invalidCollection) DeleteOne(context.Context, Filter) (int64, error) {
	return 0, c.err()
}
