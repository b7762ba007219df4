package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// Ensure PropertyService implements the interface.
var _ driving.PropertyService = (*PropertyService)(nil)

// PropertyService serves single-property lookups.
type PropertyService struct {
	catalog driven.Catalog
}

// NewPropertyService creates a new property service.
func NewPropertyService(catalog driven.Catalog) *PropertyService {
	return &PropertyService{catalog: catalog}
}

// Details joins a property with its neighborhood. A property whose
// neighborhood is not in the catalog is returned without one.
func (s *PropertyService) Details(_ context.Context, id string) (*domain.PropertyDetails, error) {
	p, err := s.catalog.Property(id)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", id, err)
	}

	details := &domain.PropertyDetails{Property: p}

	n, err := s.catalog.Neighborhood(p.Neighborhood)
	switch {
	case err == nil:
		details.Neighborhood = &n
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("property %s references unknown neighborhood %q", p.ID, p.Neighborhood)
	default:
		return nil, fmt.Errorf("neighborhood %q: %w", p.Neighborhood, err)
	}

	return details, nil
}
