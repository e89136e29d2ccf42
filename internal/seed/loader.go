package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for bundles on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based bundle loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped or plain JSON bundle from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading seed bundle")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed bundle")
		return nil, fmt.Errorf("failed to open seed bundle %s: %w", filePath, err)
	}
	defer file.Close()

	b, err := decodeBundle(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed bundle")
		return nil, fmt.Errorf("failed to read seed bundle %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(b.Products)).
		Int("blogs", len(b.Blogs)).
		Int("testimonials", len(b.Testimonials)).
		Int("gallery", len(b.Gallery)).
		Msg("seed bundle loaded")

	return b, nil
}
