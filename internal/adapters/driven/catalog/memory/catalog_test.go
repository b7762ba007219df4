package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

func testProperty(id string) domain.Property {
	return domain.Property{
		ID:            id,
		Name:          "Property " + id,
		Type:          domain.PropertyTypeCondo,
		Neighborhood:  "creekside",
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		Amenities:     []string{"wifi", "hot-tub"},
		PricePerNight: 300,
		CleaningFee:   100,
		Rating:        4.5,
		MinimumStay:   2,
		BlockedDates:  []string{"2026-01-10"},
	}
}

func TestNew(t *testing.T) {
	c, err := New(
		[]domain.Property{testProperty("a"), testProperty("b")},
		[]domain.Neighborhood{{ID: "creekside", Name: "Creekside"}},
		[]domain.Platform{{ID: "vrbo", Name: "VRBO"}},
	)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Len(t, c.Properties(), 2)
	assert.Len(t, c.Neighborhoods(), 1)
	assert.Len(t, c.Platforms(), 1)
}

func TestNew_Empty(t *testing.T) {
	c, err := New(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, c.Properties())
	assert.Empty(t, c.Neighborhoods())
	assert.Empty(t, c.Platforms())
}

func TestCatalog_Properties_PreservesOrder(t *testing.T) {
	c, err := New([]domain.Property{testProperty("z"), testProperty("a"), testProperty("m")}, nil, nil)
	require.NoError(t, err)

	props := c.Properties()
	require.Len(t, props, 3)
	assert.Equal(t, "z", props[0].ID)
	assert.Equal(t, "a", props[1].ID)
	assert.Equal(t, "m", props[2].ID)
}

func TestCatalog_Property(t *testing.T) {
	c, err := New([]domain.Property{testProperty("a")}, nil, nil)
	require.NoError(t, err)

	p, err := c.Property("a")
	require.NoError(t, err)
	assert.Equal(t, "Property a", p.Name)

	_, err = c.Property("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Neighborhood(t *testing.T) {
	c, err := New(nil, []domain.Neighborhood{{ID: "nordic", Name: "Nordic", Highlights: []string{"lake"}}}, nil)
	require.NoError(t, err)

	n, err := c.Neighborhood("nordic")
	require.NoError(t, err)
	assert.Equal(t, "Nordic", n.Name)

	_, err = c.Neighborhood("creekside")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Platform(t *testing.T) {
	c, err := New(nil, nil, []domain.Platform{{ID: "airbnb", Name: "Airbnb"}})
	require.NoError(t, err)

	p, err := c.Platform("airbnb")
	require.NoError(t, err)
	assert.Equal(t, "Airbnb", p.Name)

	_, err = c.Platform("vrbo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNew_CopiesInput(t *testing.T) {
	props := []domain.Property{testProperty("a")}
	c, err := New(props, nil, nil)
	require.NoError(t, err)

	props[0].Name = "changed"
	props[0].Amenities[0] = "changed"

	p, err := c.Property("a")
	require.NoError(t, err)
	assert.Equal(t, "Property a", p.Name)
	assert.Equal(t, "wifi", p.Amenities[0])
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c, err := New(
		[]domain.Property{testProperty("a")},
		[]domain.Neighborhood{{ID: "nordic", Highlights: []string{"lake"}}},
		[]domain.Platform{{ID: "vrbo", KeyStrengths: []string{"families"}}},
	)
	require.NoError(t, err)

	p, _ := c.Property("a")
	p.BlockedDates[0] = "2030-01-01"
	p.Amenities = append(p.Amenities, "sauna")

	all := c.Properties()
	all[0].Amenities[0] = "changed"

	n, _ := c.Neighborhood("nordic")
	n.Highlights[0] = "changed"

	pl, _ := c.Platform("vrbo")
	pl.KeyStrengths[0] = "changed"

	again, err := c.Property("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-10"}, again.BlockedDates)
	assert.Equal(t, []string{"wifi", "hot-tub"}, again.Amenities)

	n, _ = c.Neighborhood("nordic")
	assert.Equal(t, "lake", n.Highlights[0])

	pl, _ = c.Platform("vrbo")
	assert.Equal(t, "families", pl.KeyStrengths[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Property)
		errMsg string
	}{
		{"empty id", func(p *domain.Property) { p.ID = "" }, "property with empty id"},
		{"unknown type", func(p *domain.Property) { p.Type = "igloo" }, `unknown type "igloo"`},
		{"zero bedrooms", func(p *domain.Property) { p.Bedrooms = 0 }, "must be positive"},
		{"negative price", func(p *domain.Property) { p.PricePerNight = -1 }, "negative price"},
		{"negative fee", func(p *domain.Property) { p.CleaningFee = -5 }, "negative price"},
		{"rating too high", func(p *domain.Property) { p.Rating = 5.5 }, "outside 0-5"},
		{"negative reviews", func(p *domain.Property) { p.ReviewCount = -1 }, "negative review count"},
		{"zero minimum stay", func(p *domain.Property) { p.MinimumStay = 0 }, "minimum stay"},
		{"unknown season", func(p *domain.Property) {
			p.AvailableSeasons = []domain.Season{"monsoon"}
		}, `unknown season "monsoon"`},
		{"bad blocked date", func(p *domain.Property) {
			p.BlockedDates = []string{"2026-13-01"}
		}, "2026-13-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProperty("a")
			tt.mutate(&p)

			err := Validate([]domain.Property{p}, nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	err := Validate(
		[]domain.Property{testProperty("a"), testProperty("a")},
		[]domain.Neighborhood{{ID: "n"}, {ID: "n"}},
		[]domain.Platform{{ID: "p"}, {ID: "p"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `duplicate property id "a"`)
	assert.Contains(t, err.Error(), `duplicate neighborhood id "n"`)
	assert.Contains(t, err.Error(), `duplicate platform id "p"`)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	p := testProperty("a")
	p.Type = "igloo"
	p.MinimumStay = 0

	err := Validate([]domain.Property{p}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "igloo")
	assert.Contains(t, err.Error(), "minimum stay")
}

func TestNew_RejectsInvalid(t *testing.T) {
	p := testProperty("a")
	p.MinimumStay = 0

	c, err := New([]domain.Property{p}, nil, nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
