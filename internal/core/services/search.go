package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// predicate is one search filter.
type predicate func(p *domain.Property) bool

// Search filters props by every supplied filter and sorts the survivors.
// props is not modified. An empty result is not an error.
func Search(props []domain.Property, filters domain.SearchFilters) (*domain.SearchResult, error) {
	if !filters.SortBy.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort %q (use price_asc, price_desc, rating or bedrooms)",
			domain.ErrInvalidInput, filters.SortBy)
	}

	var stay *domain.DateRange
	if filters.HasDates() {
		r, err := domain.NewDateRange(filters.CheckIn, filters.CheckOut)
		if err != nil {
			return nil, err
		}
		stay = &r
	}

	preds := buildPredicates(filters, stay)
	results := make([]domain.Property, 0, len(props))
	for i := range props {
		if matchesAll(&props[i], preds) {
			results = append(results, props[i])
		}
	}

	sortProperties(results, filters.SortBy)
	return &domain.SearchResult{Properties: results, Range: stay}, nil
}

// matchesAll reports whether p satisfies every predicate.
func matchesAll(p *domain.Property, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// buildPredicates turns the supplied filters into predicates.
// Unset filters contribute nothing.
func buildPredicates(f domain.SearchFilters, stay *domain.DateRange) []predicate {
	var preds []predicate

	if f.Location != "" {
		loc := strings.ToLower(f.Location)
		preds = append(preds, func(p *domain.Property) bool {
			id := strings.ToLower(p.Neighborhood)
			return strings.Contains(id, loc) || strings.Contains(domain.HumanizeID(id), loc)
		})
	}

	if stay != nil {
		r := *stay
		preds = append(preds, func(p *domain.Property) bool {
			return !hasConflict(p, r)
		})
	}

	if f.MinBedrooms != nil {
		minBedrooms := *f.MinBedrooms
		preds = append(preds, func(p *domain.Property) bool {
			return p.Bedrooms >= minBedrooms
		})
	}

	if f.MaxPrice != nil {
		maxPrice := *f.MaxPrice
		preds = append(preds, func(p *domain.Property) bool {
			return p.PricePerNight <= maxPrice
		})
	}

	if f.SkiInSkiOut {
		preds = append(preds, func(p *domain.Property) bool { return p.SkiInSkiOut })
	}

	if f.PetFriendly {
		preds = append(preds, func(p *domain.Property) bool { return p.PetFriendly })
	}

	if len(f.Amenities) > 0 {
		wanted := f.Amenities
		preds = append(preds, func(p *domain.Property) bool {
			for _, a := range wanted {
				if !p.HasAmenity(a) {
					return false
				}
			}
			return true
		})
	}

	if f.PropertyType != "" {
		want := f.PropertyType
		preds = append(preds, func(p *domain.Property) bool {
			return strings.EqualFold(p.Type.String(), want)
		})
	}

	return preds
}

// sortProperties orders props in place. Ties keep catalog order.
func sortProperties(props []domain.Property, key domain.SortKey) {
	var less func(a, b *domain.Property) bool
	switch key {
	case domain.SortPriceAsc:
		less = func(a, b *domain.Property) bool { return a.PricePerNight < b.PricePerNight }
	case domain.SortPriceDesc:
		less = func(a, b *domain.Property) bool { return a.PricePerNight > b.PricePerNight }
	case domain.SortBedrooms:
		less = func(a, b *domain.Property) bool { return a.Bedrooms > b.Bedrooms }
	default:
		less = func(a, b *domain.Property) bool { return a.Rating > b.Rating }
	}
	sort.SliceStable(props, func(i, j int) bool {
		return less(&props[i], &props[j])
	})
}

// SearchService runs filtered searches over the catalog.
type SearchService struct {
	catalog driven.Catalog
}

// NewSearchService creates a new search service.
func NewSearchService(catalog driven.Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search filters the full catalog.
func (s *SearchService) Search(_ context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	logger.Section("Property Search")
	logger.Debug("Location: %q, type: %q, dates: %t, sort: %q",
		filters.Location, filters.PropertyType, filters.HasDates(), filters.SortBy)

	result, err := Search(s.catalog.Properties(), filters)
	if err != nil {
		return nil, err
	}

	logger.Debug("Matched %d properties", len(result.Properties))
	return result, nil
}
