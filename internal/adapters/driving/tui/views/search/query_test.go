package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
)

func intPtr(n int) *int { return &n }

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.SearchFilters
	}{
		{
			name:  "empty",
			query: "   ",
			want:  domain.SearchFilters{},
		},
		{
			name:  "flags",
			query: "ski pets",
			want:  domain.SearchFilters{SkiInSkiOut: true, PetFriendly: true},
		},
		{
			name:  "long flag forms",
			query: "ski-in pet-friendly",
			want:  domain.SearchFilters{SkiInSkiOut: true, PetFriendly: true},
		},
		{
			name:  "property type",
			query: "Chalet",
			want:  domain.SearchFilters{PropertyType: "chalet"},
		},
		{
			name:  "hyphenated amenity kept as written",
			query: "+hot-tub +Ski-Storage",
			want:  domain.SearchFilters{Amenities: []string{"hot-tub", "ski-storage"}},
		},
		{
			name:  "bare plus is location",
			query: "+",
			want:  domain.SearchFilters{Location: "+"},
		},
		{
			name:  "dates",
			query: "in:2025-02-10 out:2025-02-14",
			want:  domain.SearchFilters{CheckIn: "2025-02-10", CheckOut: "2025-02-14"},
		},
		{
			name:  "sort",
			query: "sort:price_asc",
			want:  domain.SearchFilters{SortBy: domain.SortPriceAsc},
		},
		{
			name:  "bedrooms",
			query: "3br",
			want:  domain.SearchFilters{MinBedrooms: intPtr(3)},
		},
		{
			name:  "price ceiling",
			query: "<400",
			want:  domain.SearchFilters{MaxPrice: intPtr(400)},
		},
		{
			name:  "price ceiling with dollar sign",
			query: "<$350",
			want:  domain.SearchFilters{MaxPrice: intPtr(350)},
		},
		{
			name:  "price ceiling keyword",
			query: "max:500",
			want:  domain.SearchFilters{MaxPrice: intPtr(500)},
		},
		{
			name:  "location words joined",
			query: "Upper Village",
			want:  domain.SearchFilters{Location: "upper-village"},
		},
		{
			name:  "placeholder query",
			query: "creekside 2br <400 ski pets +hot-tub",
			want: domain.SearchFilters{
				Location:    "creekside",
				MinBedrooms: intPtr(2),
				MaxPrice:    intPtr(400),
				SkiInSkiOut: true,
				PetFriendly: true,
				Amenities:   []string{"hot-tub"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.query))
		})
	}
}

func TestParseQuery_AmenityMatchesCatalog(t *testing.T) {
	result, err := services.Search(memory.Builtin().Properties(), ParseQuery("+hot-tub"))
	require.NoError(t, err)
	require.NotEmpty(t, result.Properties)

	for _, p := range result.Properties {
		assert.True(t, p.HasAmenity("hot-tub"), p.ID)
	}
}

func TestBedrooms(t *testing.T) {
	tests := []struct {
		tok    string
		want   int
		wantOK bool
	}{
		{"2br", 2, true},
		{"0br", 0, true},
		{"br", 0, false},
		{"-1br", 0, false},
		{"twobr", 0, false},
		{"2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			n, ok := bedrooms(tt.tok)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestMaxPrice(t *testing.T) {
	tests := []struct {
		tok    string
		want   int
		wantOK bool
	}{
		{"<400", 400, true},
		{"<$400", 400, true},
		{"max:250", 250, true},
		{"max:$250", 250, true},
		{"400", 0, false},
		{"<cheap", 0, false},
		{"<-5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			n, ok := maxPrice(tt.tok)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestNextSort(t *testing.T) {
	tests := []struct {
		from domain.SortKey
		want domain.SortKey
	}{
		{"", domain.SortPriceAsc},
		{domain.SortRating, domain.SortPriceAsc},
		{domain.SortPriceAsc, domain.SortPriceDesc},
		{domain.SortPriceDesc, domain.SortBedrooms},
		{domain.SortBedrooms, domain.SortRating},
		{"bogus", domain.SortRating},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, nextSort(tt.from))
		})
	}
}
