package property

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

func testDetails() *domain.PropertyDetails {
	return &domain.PropertyDetails{
		Property: domain.Property{
			ID:            "creek-condo",
			Name:          "Creekside Condo",
			Type:          domain.PropertyTypeCondo,
			Neighborhood:  "creekside",
			Description:   "Steps from the gondola.",
			Bedrooms:      2,
			Bathrooms:     2,
			MaxGuests:     4,
			Amenities:     []string{"Hot Tub", "WiFi"},
			SkiInSkiOut:   true,
			PricePerNight: 1500,
			CleaningFee:   150,
			Rating:        4.7,
			ReviewCount:   12,
			Host:          domain.Host{Name: "Anna", Superhost: true},
			Coordinates:   domain.Coordinates{Lat: 50.0826, Lng: -122.9477},
			MinimumStay:   3,
		},
		Neighborhood: &domain.Neighborhood{
			ID:                "creekside",
			Name:              "Creekside",
			NearestLift:       "Creekside Gondola",
			DistanceToVillage: "4km",
			Highlights:        []string{"Quiet"},
		},
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Nil(t, v.Init())
	assert.Nil(t, v.Details())
	assert.Contains(t, v.View(), "No property selected")
}

func TestView_DetailsLoaded(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(100, 60)

	v.Update(messages.DetailsLoaded{ID: "creek-condo", Details: testDetails()})

	require.NotNil(t, v.Details())
	view := v.View()
	for _, want := range []string{
		"Creekside Condo",
		"condo",
		"$1,500 CAD / night",
		"3 nights",
		"4.7 (12 reviews)",
		"Anna (Superhost)",
		"Ski-In/Ski-Out",
		"Geohash:",
		"Hot Tub",
		"Nearest lift: Creekside Gondola",
		"· Quiet",
	} {
		assert.Contains(t, view, want)
	}
}

func TestView_DetailsWithoutNeighborhood(t *testing.T) {
	d := testDetails()
	d.Neighborhood = nil
	d.Property.Coordinates = domain.Coordinates{}
	v := NewView(nil)
	v.SetDimensions(100, 60)
	v.SetDetails(d)

	view := v.View()
	assert.NotContains(t, view, "Neighborhood:")
	assert.NotContains(t, view, "Geohash:")
}

func TestView_DetailsLoadedError(t *testing.T) {
	v := NewView(nil)
	v.SetDetails(testDetails())

	v.Update(messages.DetailsLoaded{ID: "ghost", Err: domain.ErrNotFound})

	assert.Nil(t, v.Details())
	require.ErrorIs(t, v.Err(), domain.ErrNotFound)
	assert.Contains(t, v.View(), `Property not found: "ghost"`)
}

func TestView_ErrorOccurred(t *testing.T) {
	v := NewView(nil)

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	v.SetDetails(testDetails())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, v.ScrollOffset())
	assert.Contains(t, v.View(), "[Line 3-6 of")

	for range 100 {
		v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, v.maxScrollOffset(), v.ScrollOffset())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, v.maxScrollOffset()-1, v.ScrollOffset())

	v.SetDetails(testDetails())
	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_EscReturnsToSearch(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}
