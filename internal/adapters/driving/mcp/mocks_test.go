package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result  *domain.SearchResult
	err     error
	filters domain.SearchFilters
}

func (m *mockSearchService) Search(_ context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	m.filters = filters
	return m.result, m.err
}

// mockAvailabilityService is a mock implementation of driving.AvailabilityService.
type mockAvailabilityService struct {
	result *domain.AvailabilityResult
	err    error
}

func (m *mockAvailabilityService) Check(_ context.Context, _, _, _ string) (*domain.AvailabilityResult, error) {
	return m.result, m.err
}

// mockCompareService is a mock implementation of driving.CompareService.
type mockCompareService struct {
	comparison *domain.Comparison
	err        error
	ids        []string
}

func (m *mockCompareService) Compare(_ context.Context, ids []string, _, _ string) (*domain.Comparison, error) {
	m.ids = ids
	return m.comparison, m.err
}

// mockPropertyService is a mock implementation of driving.PropertyService.
type mockPropertyService struct {
	details *domain.PropertyDetails
	err     error
}

func (m *mockPropertyService) Details(_ context.Context, _ string) (*domain.PropertyDetails, error) {
	return m.details, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	properties    []domain.Property
	neighborhoods []domain.Neighborhood
	platforms     []domain.Platform
	err           error
}

func (m *mockCatalogService) ListProperties(_ context.Context) []domain.Property {
	return m.properties
}

func (m *mockCatalogService) GetProperty(_ context.Context, id string) (*domain.Property, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.properties {
		if m.properties[i].ID == id {
			return &m.properties[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) ListNeighborhoods(_ context.Context) []domain.Neighborhood {
	return m.neighborhoods
}

func (m *mockCatalogService) GetNeighborhood(_ context.Context, id string) (*domain.Neighborhood, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.neighborhoods {
		if m.neighborhoods[i].ID == id {
			return &m.neighborhoods[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) ListPlatforms(_ context.Context) []domain.Platform {
	return m.platforms
}

func (m *mockCatalogService) GetPlatform(_ context.Context, id string) (*domain.Platform, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.platforms {
		if m.platforms[i].ID == id {
			return &m.platforms[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) CompleteID(_ context.Context, kind, prefix string) []string {
	var ids []string
	switch kind {
	case "property":
		for _, p := range m.properties {
			ids = append(ids, p.ID)
		}
	case "neighborhood":
		for _, n := range m.neighborhoods {
			ids = append(ids, n.ID)
		}
	case "platform":
		for _, p := range m.platforms {
			ids = append(ids, p.ID)
		}
	}
	out := []string{}
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			out = append(out, id)
		}
	}
	return out
}

// newMockPorts returns ports backed by empty mocks.
func newMockPorts() *Ports {
	return &Ports{
		Search:       &mockSearchService{result: &domain.SearchResult{}},
		Availability: &mockAvailabilityService{},
		Compare:      &mockCompareService{},
		Property:     &mockPropertyService{},
		Catalog:      newMockCatalog(),
	}
}

func newMockCatalog() *mockCatalogService {
	return &mockCatalogService{
		properties: []domain.Property{
			{ID: "creek-condo", Name: "Creekside Condo", Type: domain.PropertyTypeCondo, Neighborhood: "creekside",
				Bedrooms: 2, Bathrooms: 1, MaxGuests: 4, PricePerNight: 500, CleaningFee: 150, Rating: 4.8,
				SkiInSkiOut: true, MinimumStay: 3},
			{ID: "nordic-cabin", Name: "Nordic Cabin", Type: domain.PropertyTypeCabin, Neighborhood: "nordic",
				Bedrooms: 3, Bathrooms: 2, MaxGuests: 6, PricePerNight: 300, CleaningFee: 100, Rating: 4.5,
				PetFriendly: true, MinimumStay: 2},
		},
		neighborhoods: []domain.Neighborhood{
			{ID: "creekside", Name: "Creekside", Description: "South base.", NearestLift: "Creekside Gondola",
				DistanceToVillage: "4 km", Elevation: "655m", Highlights: []string{"Gondola"}},
			{ID: "nordic", Name: "Nordic", Description: "Quiet hillside.", NearestLift: "Creekside Gondola",
				DistanceToVillage: "3 km", Elevation: "700m"},
		},
		platforms: []domain.Platform{
			{ID: "airbnb", Name: "Airbnb", URL: "https://airbnb.com", PropertyCount: "1000+",
				KeyStrengths: []string{"Selection"}},
			{ID: "alluradirect", Name: "AlluraDirect", URL: "https://alluradirect.com", PropertyCount: "200+",
				KeyStrengths: []string{"Low fees"}},
		},
	}
}

// resultText returns the text of a single-content tool result.
func resultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		return ""
	}
	return text.Text
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

// Helper to create a GetPromptRequest with the given arguments.
func makeGetPromptRequest(name string, args map[string]string) *mcp.GetPromptRequest {
	return &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      name,
			Arguments: args,
		},
	}
}
