package services

import (
	"time"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
)

var _ driven.Catalog = (*mockCatalog)(nil)

// mockCatalog is an in-memory catalog for service tests.
type mockCatalog struct {
	properties    []domain.Property
	neighborhoods []domain.Neighborhood
	platforms     []domain.Platform

	// propertyErr and neighborhoodErr, when set, are returned by every
	// Property or Neighborhood lookup.
	propertyErr     error
	neighborhoodErr error
}

func (m *mockCatalog) Properties() []domain.Property {
	return append([]domain.Property(nil), m.properties...)
}

func (m *mockCatalog) Property(id string) (domain.Property, error) {
	if m.propertyErr != nil {
		return domain.Property{}, m.propertyErr
	}
	for _, p := range m.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func (m *mockCatalog) Neighborhoods() []domain.Neighborhood {
	return append([]domain.Neighborhood(nil), m.neighborhoods...)
}

func (m *mockCatalog) Neighborhood(id string) (domain.Neighborhood, error) {
	if m.neighborhoodErr != nil {
		return domain.Neighborhood{}, m.neighborhoodErr
	}
	for _, n := range m.neighborhoods {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Neighborhood{}, domain.ErrNotFound
}

func (m *mockCatalog) Platforms() []domain.Platform {
	return append([]domain.Platform(nil), m.platforms...)
}

func (m *mockCatalog) Platform(id string) (domain.Platform, error) {
	for _, p := range m.platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Platform{}, domain.ErrNotFound
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

// testProperties is a small catalog covering every filter dimension.
// Ratings are distinct except for "creek-condo" and "nordic-cabin" (4.5).
func testProperties() []domain.Property {
	return []domain.Property{
		{
			ID: "village-studio", Name: "Village Studio", Type: domain.PropertyTypeCondo,
			Neighborhood: "whistler-village", Bedrooms: 1, Bathrooms: 1, MaxGuests: 2,
			Amenities: []string{"wifi", "pool"}, SkiInSkiOut: true,
			PricePerNight: 250, CleaningFee: 80, Rating: 4.2, ReviewCount: 10, MinimumStay: 2,
			BlockedDates: []string{"2026-01-15"},
		},
		{
			ID: "creek-condo", Name: "Creek Condo", Type: domain.PropertyTypeCondo,
			Neighborhood: "creekside", Bedrooms: 2, Bathrooms: 2, MaxGuests: 6,
			Amenities: []string{"Hot-Tub", "wifi", "fireplace"}, PetFriendly: true,
			PricePerNight: 500, CleaningFee: 150, Rating: 4.5, ReviewCount: 40, MinimumStay: 3,
			BlockedDates: []string{"2025-01-11", "2025-01-13", "2025-01-11"},
		},
		{
			ID: "kadenwood-chalet", Name: "Kadenwood Chalet", Type: domain.PropertyTypeChalet,
			Neighborhood: "kadenwood", Bedrooms: 5, Bathrooms: 4, MaxGuests: 12,
			Amenities: []string{"hot-tub", "sauna", "wifi", "fireplace", "bbq", "garage"}, SkiInSkiOut: true,
			PricePerNight: 2000, CleaningFee: 500, Rating: 4.9, ReviewCount: 20, MinimumStay: 5,
		},
		{
			ID: "nordic-cabin", Name: "Nordic Cabin", Type: domain.PropertyTypeCabin,
			Neighborhood: "nordic", Bedrooms: 3, Bathrooms: 1, MaxGuests: 6,
			Amenities: []string{"wood-stove", "wifi"}, PetFriendly: true,
			PricePerNight: 300, CleaningFee: 90, Rating: 4.5, ReviewCount: 8, MinimumStay: 1,
			BlockedDates: []string{"2026-01-10", "2026-01-20"},
		},
		{
			ID: "upper-townhouse", Name: "Upper Townhouse", Type: domain.PropertyTypeTownhouse,
			Neighborhood: "upper-village", Bedrooms: 3, Bathrooms: 2, MaxGuests: 8,
			Amenities: []string{"hot-tub", "garage"}, SkiInSkiOut: true,
			PricePerNight: 650, CleaningFee: 200, Rating: 4.0, ReviewCount: 5, MinimumStay: 3,
		},
	}
}

func newTestCatalog() *mockCatalog {
	return &mockCatalog{
		properties: testProperties(),
		neighborhoods: []domain.Neighborhood{
			{ID: "whistler-village", Name: "Whistler Village"},
			{ID: "creekside", Name: "Creekside"},
			{ID: "upper-village", Name: "Upper Village"},
			{ID: "nordic", Name: "Nordic"},
		},
		platforms: []domain.Platform{
			{ID: "airbnb", Name: "Airbnb"},
			{ID: "alluradirect", Name: "AlluraDirect"},
		},
	}
}
