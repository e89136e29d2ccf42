// Package seed imports initial site content from a JSON bundle at startup.
package seed

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"clinic-cms/internal/model"
)

// Bundle is the content imported into empty collections.
type Bundle struct {
	Products     []model.ProductCreate     `json:"products"`
	Blogs        []model.BlogCreate        `json:"blogs"`
	Testimonials []model.TestimonialCreate `json:"testimonials"`
	Gallery      []model.GalleryCreate     `json:"gallery"`
}

// Loader defines the interface for loading seed bundles.
type Loader interface {
	// Load reads the bundle at path.
	Load(ctx context.Context, path string) (*Bundle, error)
}

var gzipMagic = []byte{0x1f, 0x8b}

// decodeBundle reads a bundle that is either gzipped or plain JSON.
func decodeBundle(r io.Reader) (*Bundle, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read bundle header: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	var b Bundle
	if err := json.NewDecoder(src).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	return &b, nil
}
