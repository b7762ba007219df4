package search

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error)

	// Calls records the filters of every search.
	Calls []domain.SearchFilters
}

func (m *MockSearchService) Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	m.Calls = append(m.Calls, filters)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filters)
	}
	return &domain.SearchResult{}, nil
}

func testProperties() []domain.Property {
	return []domain.Property{
		{ID: "creek-condo", Name: "Creekside Condo", Type: domain.PropertyTypeCondo, Neighborhood: "creekside",
			Bedrooms: 2, MaxGuests: 4, PricePerNight: 500, Rating: 4.7},
		{ID: "big-chalet", Name: "Big Chalet", Type: domain.PropertyTypeChalet, Neighborhood: "kadenwood",
			Bedrooms: 5, MaxGuests: 10, PricePerNight: 1800, Rating: 4.9},
	}
}
