package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore keeps each collection in its own table of JSONB documents:
//
//	seq BIGSERIAL, id TEXT PRIMARY KEY, doc JSONB NOT NULL
//
// The schema is created by the database package's migrations.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a Store backed by a PostgreSQL connection pool.
// The store takes ownership of the pool and closes it on Close.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) Store {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

func (s *postgresStore) Collection(name string) Collection {
	if !knownCollection(name) {
		return invalidCollection{name: name}
	}
	return &postgresCollection{
		pool:   s.pool,
		name:   name,
		table:  pgx.Identifier{name}.Sanitize(),
		logger: s.logger.With().Str("collection", name).Logger(),
	}
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) Close(context.Context) error {
	s.pool.Close()
	s.logger.Info().Msg("postgres connection pool closed")
	return nil
}

type postgresCollection struct {
	pool   *pgxpool.Pool
	name   string
	table  string
	logger zerolog.Logger
}

// Find returns up to limit documents containing filter, oldest first.
func (c *postgresCollection) Find(ctx context.Context, filter Filter, limit int) ([]Document, error) {
	match, err := marshalJSON(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT doc
		FROM %s
		WHERE doc @> $1::jsonb
		ORDER BY seq
		LIMIT $2
	`, c.table)

	rows, err := c.pool.Query(ctx, query, match, limit)
	if err != nil {
		c.logger.Error().Err(err).Int("limit", limit).Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}

	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to scan document rows")
		return nil, fmt.Errorf("failed to scan %s: %w", c.name, err)
	}

	docs := make([]Document, 0, len(raws))
	for _, raw := range raws {
		doc, err := unmarshalDocument(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// FindOne returns the oldest document containing filter, or nil.
func (c *postgresCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	match, err := marshalJSON(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT doc
		FROM %s
		WHERE doc @> $1::jsonb
		ORDER BY seq
		LIMIT 1
	`, c.table)

	var raw []byte
	err = c.pool.QueryRow(ctx, query, match).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		c.logger.Error().Err(err).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}

	return unmarshalDocument(raw)
}

// InsertOne stores doc under its id.
func (c *postgresCollection) InsertOne(ctx context.Context, doc Document) error {
	id, err := documentID(doc)
	if err != nil {
		return err
	}

	body, err := marshalJSON(doc)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, c.table)

	if _, err := c.pool.Exec(ctx, query, id, body); err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("failed to insert document")
		return fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}

	return nil
}

// UpdateOne merges set into the oldest document containing filter.
func (c *postgresCollection) UpdateOne(ctx context.Context, filter Filter, set Document) (int64, error) {
	match, err := marshalJSON(filter)
	if err != nil {
		return 0, err
	}

	patch, err := marshalJSON(set)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET doc = doc || $2::jsonb
		WHERE id = (
			SELECT id FROM %[1]s
			WHERE doc @> $1::jsonb
			ORDER BY seq
			LIMIT 1
		)
	`, c.table)

	tag, err := c.pool.Exec(ctx, query, match, patch)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to update document")
		return 0, fmt.Errorf("failed to update %s: %w", c.name, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteOne removes the oldest document containing filter.
func (c *postgresCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	match, err := marshalJSON(filter)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE id = (
			SELECT id FROM %[1]s
			WHERE doc @> $1::jsonb
			ORDER BY seq
			LIMIT 1
		)
	`, c.table)

	tag, err := c.pool.Exec(ctx, query, match)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to delete document")
		return 0, fmt.Errorf("failed to delete from %s: %w", c.name, err)
	}

	return tag.RowsAffected(), nil
}

func marshalJSON(v any) (string, error) {
	if m, ok := v.(Filter); ok && m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(b), nil
}

func unmarshalDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}
