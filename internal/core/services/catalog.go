package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes read-only catalog browsing.
type CatalogService struct {
	catalog driven.Catalog
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog driven.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListProperties returns every property in catalog order.
func (s *CatalogService) ListProperties(_ context.Context) []domain.Property {
	return s.catalog.Properties()
}

// GetProperty returns one property.
func (s *CatalogService) GetProperty(_ context.Context, id string) (*domain.Property, error) {
	p, err := s.catalog.Property(id)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", id, err)
	}
	return &p, nil
}

// ListNeighborhoods returns every neighborhood in catalog order.
func (s *CatalogService) ListNeighborhoods(_ context.Context) []domain.Neighborhood {
	return s.catalog.Neighborhoods()
}

// GetNeighborhood returns one neighborhood.
func (s *CatalogService) GetNeighborhood(_ context.Context, id string) (*domain.Neighborhood, error) {
	n, err := s.catalog.Neighborhood(id)
	if err != nil {
		return nil, fmt.Errorf("neighborhood %q: %w", id, err)
	}
	return &n, nil
}

// ListPlatforms returns every booking platform in catalog order.
func (s *CatalogService) ListPlatforms(_ context.Context) []domain.Platform {
	return s.catalog.Platforms()
}

// GetPlatform returns one platform.
func (s *CatalogService) GetPlatform(_ context.Context, id string) (*domain.Platform, error) {
	p, err := s.catalog.Platform(id)
	if err != nil {
		return nil, fmt.Errorf("platform %q: %w", id, err)
	}
	return &p, nil
}

// CompleteID returns ids of the given kind that start with prefix, ignoring case.
// Unknown kinds complete to nothing.
func (s *CatalogService) CompleteID(_ context.Context, kind, prefix string) []string {
	var ids []string
	switch kind {
	case driving.KindProperty:
		for _, p := range s.catalog.Properties() {
			ids = append(ids, p.ID)
		}
	case driving.KindNeighborhood:
		for _, n := range s.catalog.Neighborhoods() {
			ids = append(ids, n.ID)
		}
	case driving.KindPlatform:
		for _, p := range s.catalog.Platforms() {
			ids = append(ids, p.ID)
		}
	}

	prefix = strings.ToLower(prefix)
	matches := []string{}
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(id), prefix) {
			matches = append(matches, id)
		}
	}
	return matches
}
