package database

import (
	"context"
	"fmt"
	"time"

	"clinic-cms/internal/config"
	"clinic-cms/internal/docstore"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// OpenStore opens the document store selected by cfg.Store.Driver. For the
// postgres driver the schema is migrated before the store is returned.
func OpenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (docstore.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return docstore.NewPostgresStore(pool, logger), nil

	case config.DriverMongo:
		store, err := docstore.NewMongoStore(ctx, cfg.Mongo.URL, cfg.Mongo.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open mongo store: %w", err)
		}
		return store, nil

	case config.DriverMemory:
		logger.Warn().Msg("using in-memory store, data will not survive a restart")
		return docstore.NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
}

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}
