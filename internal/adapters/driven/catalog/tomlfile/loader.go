package tomlfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
)

// document is the on-disk layout of a catalog file.
type document struct {
	Properties    []domain.Property     `toml:"properties"`
	Neighborhoods []domain.Neighborhood `toml:"neighborhoods"`
	Platforms     []domain.Platform     `toml:"platforms"`
}

// Load reads and validates the catalog file at path.
func Load(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. Unknown keys are rejected so that
// misspelled fields do not silently fall back to zero values.
func Parse(data []byte) (*memory.Catalog, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strict.String())
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return memory.New(doc.Properties, doc.Neighborhoods, doc.Platforms)
}

// Encode renders a catalog as a TOML document that Parse accepts.
func Encode(c driven.Catalog) ([]byte, error) {
	return toml.Marshal(document{
		Properties:    c.Properties(),
		Neighborhoods: c.Neighborhoods(),
		Platforms:     c.Platforms(),
	})
}
