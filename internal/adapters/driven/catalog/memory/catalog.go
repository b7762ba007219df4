package memory

import (
	"slices"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is an immutable in-memory rental catalog.
type Catalog struct {
	properties    []domain.Property
	neighborhoods []domain.Neighborhood
	platforms     []domain.Platform

	propertyIndex     map[string]int
	neighborhoodIndex map[string]int
	platformIndex     map[string]int
}

// New validates the records and builds a catalog from copies of them.
// All validation problems are reported together.
func New(
	properties []domain.Property,
	neighborhoods []domain.Neighborhood,
	platforms []domain.Platform,
) (*Catalog, error) {
	if err := Validate(properties, neighborhoods, platforms); err != nil {
		return nil, err
	}

	c := &Catalog{
		properties:        make([]domain.Property, len(properties)),
		neighborhoods:     make([]domain.Neighborhood, len(neighborhoods)),
		platforms:         make([]domain.Platform, len(platforms)),
		propertyIndex:     make(map[string]int, len(properties)),
		neighborhoodIndex: make(map[string]int, len(neighborhoods)),
		platformIndex:     make(map[string]int, len(platforms)),
	}

	for i := range properties {
		c.properties[i] = cloneProperty(properties[i])
		c.propertyIndex[properties[i].ID] = i
	}
	for i := range neighborhoods {
		c.neighborhoods[i] = cloneNeighborhood(neighborhoods[i])
		c.neighborhoodIndex[neighborhoods[i].ID] = i
	}
	for i := range platforms {
		c.platforms[i] = clonePlatform(platforms[i])
		c.platformIndex[platforms[i].ID] = i
	}

	return c, nil
}

// Properties returns every property in catalog order.
func (c *Catalog) Properties() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	for i := range c.properties {
		out[i] = cloneProperty(c.properties[i])
	}
	return out
}

// Property returns the property with the given id.
func (c *Catalog) Property(id string) (domain.Property, error) {
	i, ok := c.propertyIndex[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return cloneProperty(c.properties[i]), nil
}

// Neighborhoods returns every neighborhood in catalog order.
func (c *Catalog) Neighborhoods() []domain.Neighborhood {
	out := make([]domain.Neighborhood, len(c.neighborhoods))
	for i := range c.neighborhoods {
		out[i] = cloneNeighborhood(c.neighborhoods[i])
	}
	return out
}

// Neighborhood returns the neighborhood with the given id.
func (c *Catalog) Neighborhood(id string) (domain.Neighborhood, error) {
	i, ok := c.neighborhoodIndex[id]
	if !ok {
		return domain.Neighborhood{}, domain.ErrNotFound
	}
	return cloneNeighborhood(c.neighborhoods[i]), nil
}

// Platforms returns every booking platform in catalog order.
func (c *Catalog) Platforms() []domain.Platform {
	out := make([]domain.Platform, len(c.platforms))
	for i := range c.platforms {
		out[i] = clonePlatform(c.platforms[i])
	}
	return out
}

// Platform returns the platform with the given id.
func (c *Catalog) Platform(id string) (domain.Platform, error) {
	i, ok := c.platformIndex[id]
	if !ok {
		return domain.Platform{}, domain.ErrNotFound
	}
	return clonePlatform(c.platforms[i]), nil
}

func cloneProperty(p domain.Property) domain.Property {
	p.Amenities = slices.Clone(p.Amenities)
	p.Images = slices.Clone(p.Images)
	p.AvailableSeasons = slices.Clone(p.AvailableSeasons)
	p.BlockedDates = slices.Clone(p.BlockedDates)
	return p
}

func cloneNeighborhood(n domain.Neighborhood) domain.Neighborhood {
	n.Highlights = slices.Clone(n.Highlights)
	return n
}

func clonePlatform(p domain.Platform) domain.Platform {
	p.KeyStrengths = slices.Clone(p.KeyStrengths)
	return p
}
