package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig `envPrefix:"DB_"`
	Mongo    MongoConfig    `envPrefix:"MONGO_"`
	Logger   LoggerConfig   `envPrefix:"LOG_"`
	Auth     AuthConfig
	CORS     CORSConfig
	Seed     SeedConfig   `envPrefix:"SEED_"`
	S3       S3Config     `envPrefix:"S3_"`
	Notify   NotifyConfig `envPrefix:"NOTIFY_"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host           string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           int           `env:"SERVER_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"15s"`
	APIName        string        `env:"API_NAME" envDefault:"Swayambhu Ayurveda API"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER" envDefault:"postgres"`
	ListLimit int    `env:"LIST_LIMIT" envDefault:"1000"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD"`
	Database        string        `env:"NAME" envDefault:"clinic"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxConnections  int           `env:"MAX_CONNECTIONS" envDefault:"25"`
	MinConnections  int           `env:"MIN_CONNECTIONS" envDefault:"5"`
	MaxConnLifetime time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"5m"`
}

// MongoConfig holds MongoDB configuration.
type MongoConfig struct {
	URL      string `env:"URL" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB_NAME" envDefault:"clinic"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"` // "json" or "console"
}

// AuthConfig holds token and route-protection configuration.
type AuthConfig struct {
	JWTSecret        string        `env:"JWT_SECRET_KEY"`
	TokenTTL         time.Duration `env:"JWT_TTL" envDefault:"72h"`
	Enforce          bool          `env:"AUTH_ENFORCE" envDefault:"false"`
	RegistrationOpen bool          `env:"ADMIN_REGISTRATION_OPEN" envDefault:"true"`
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// SeedConfig controls the optional startup content import.
type SeedConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	File    string `env:"FILE" envDefault:"data/seed.json.gz"`
}

// S3Config holds AWS S3 configuration for seed bundles.
type S3Config struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Bucket  string `env:"BUCKET"`
	Region  string `env:"REGION" envDefault:"ap-south-1"`
	Prefix  string `env:"PREFIX" envDefault:"seed/"` // Path prefix within bucket
}

// NotifyConfig holds SES e-mail notification configuration.
type NotifyConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Region  string `env:"REGION" envDefault:"ap-south-1"`
	From    string `env:"FROM"`
	To      string `env:"TO"`
}

// Load loads configuration from the environment, after merging an optional
// .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server request timeout must be positive")
	}

	if c.Store.ListLimit < 1 {
		return fmt.Errorf("list limit must be at least 1")
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if err := c.Database.validate(); err != nil {
			return err
		}
	case DriverMongo:
		if c.Mongo.URL == "" {
			return fmt.Errorf("mongo URL is required")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("mongo database name is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid store driver: %s (must be postgres, mongo, or memory)", c.Store.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret key is required")
	}

	if c.Auth.TokenTTL < 0 {
		return fmt.Errorf("JWT TTL cannot be negative")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Seed.Enabled && c.Seed.File == "" {
		return fmt.Errorf("seed file is required when seeding is enabled")
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if c.Notify.Enabled {
		if c.Notify.From == "" || c.Notify.To == "" {
			return fmt.Errorf("notification sender and recipient are required when notifications are enabled")
		}
		if c.Notify.Region == "" {
			return fmt.Errorf("notification region is required when notifications are enabled")
		}
	}

	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.SSLMode,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
