package repository

import (
	"context"
	"fmt"

	"clinic-cms/internal/docstore"

	"github.com/rs/zerolog"
)

// collectionRepository implements Repository over a docstore.Collection.
type collectionRepository[T any] struct {
	coll   docstore.Collection
	name   string
	logger zerolog.Logger
}

func newCollectionRepository[T any](store docstore.Store, name string, logger zerolog.Logger) *collectionRepository[T] {
	return &collectionRepository[T]{
		coll:   store.Collection(name),
		name:   name,
		logger: logger.With().Str("repository", name).Logger(),
	}
}

// List retrieves up to limit entities matching filter in store order.
func (r *collectionRepository[T]) List(ctx context.Context, filter docstore.Filter, limit int) ([]T, error) {
	docs, err := r.coll.Find(ctx, filter, limit)
	if err != nil {
		r.logger.Error().Err(err).
			Interface("filter", filter).
			Int("limit", limit).
			Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query %s: %w", r.name, err)
	}

	entities := make([]T, 0, len(docs))
	for _, doc := range docs {
		var e T
		if err := fromDocument(doc, &e); err != nil {
			r.logger.Error().Err(err).Interface("id", doc[docstore.IDField]).Msg("failed to decode document")
			return nil, fmt.Errorf("failed to decode %s: %w", r.name, err)
		}
		entities = append(entities, e)
	}

	return entities, nil
}

// FindOne retrieves the first entity matching filter, or nil if none does.
func (r *collectionRepository[T]) FindOne(ctx context.Context, filter docstore.Filter) (*T, error) {
	doc, err := r.coll.FindOne(ctx, filter)
	if err != nil {
		r.logger.Error().Err(err).Interface("filter", filter).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query %s: %w", r.name, err)
	}

	if doc == nil {
		r.logger.Debug().Interface("filter", filter).Msg("document not found")
		return nil, nil
	}

	var e T
	if err := fromDocument(doc, &e); err != nil {
		r.logger.Error().Err(err).Interface("filter", filter).Msg("failed to decode document")
		return nil, fmt.Errorf("failed to decode %s: %w", r.name, err)
	}

	return &e, nil
}

// GetByID retrieves an entity by its id, or nil if it does not exist.
func (r *collectionRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, docstore.ByID(id))
}

// Create inserts a new entity.
func (r *collectionRepository[T]) Create(ctx context.Context, entity *T) error {
	doc, err := toDocument(entity)
	if err != nil {
		return err
	}

	if err := r.coll.InsertOne(ctx, doc); err != nil {
		r.logger.Error().Err(err).Interface("id", doc[docstore.IDField]).Msg("failed to insert document")
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}

	return nil
}

// Replace overwrites every field except id and created_at.
func (r *collectionRepository[T]) Replace(ctx context.Context, id string, entity *T) (bool, error) {
	doc, err := toDocument(entity)
	if err != nil {
		return false, err
	}

	delete(doc, docstore.IDField)
	delete(doc, createdAtField)

	return r.SetFields(ctx, id, doc)
}

// SetFields updates only the given fields.
func (r *collectionRepository[T]) SetFields(ctx context.Context, id string, fields docstore.Document) (bool, error) {
	matched, err := r.coll.UpdateOne(ctx, docstore.ByID(id), fields)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("failed to update document")
		return false, fmt.Errorf("failed to update %s: %w", r.name, err)
	}

	return matched > 0, nil
}

// Delete removes an entity by id.
func (r *collectionRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.coll.DeleteOne(ctx, docstore.ByID(id))
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("failed to delete document")
		return false, fmt.Errorf("failed to delete %s: %w", r.name, err)
	}

	return deleted > 0, nil
}
