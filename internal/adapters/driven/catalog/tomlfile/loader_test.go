package tomlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

const sampleCatalog = `
[[properties]]
id = "alta-cabin"
name = "Alta Cabin"
type = "cabin"
neighborhood = "nordic"
description = "Log cabin by the lake."
bedrooms = 2
bathrooms = 1
max_guests = 4
amenities = ["wood-stove", "wifi"]
ski_in_ski_out = false
pet_friendly = true
price_per_night = 240
cleaning_fee = 90
rating = 4.6
review_count = 12
available_seasons = ["winter", "summer"]
minimum_stay = 2
blocked_dates = ["2026-01-03", "2026-01-04"]

[properties.host]
name = "Erik"
superhost = true

[properties.coordinates]
lat = 50.104
lng = -122.969

[[neighborhoods]]
id = "nordic"
name = "Nordic"
highlights = ["Lost Lake trails"]
nearest_lift = "Creekside Gondola"

[[platforms]]
id = "vrbo"
name = "VRBO"
url = "https://www.vrbo.com"
key_strengths = ["Whole homes"]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeFile(t, sampleCatalog))
	require.NoError(t, err)

	p, err := c.Property("alta-cabin")
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyTypeCabin, p.Type)
	assert.Equal(t, 4, p.MaxGuests)
	assert.True(t, p.PetFriendly)
	assert.Equal(t, 240, p.PricePerNight)
	assert.InDelta(t, 4.6, p.Rating, 1e-9)
	assert.Equal(t, []domain.Season{domain.SeasonWinter, domain.SeasonSummer}, p.AvailableSeasons)
	assert.Equal(t, []string{"2026-01-03", "2026-01-04"}, p.BlockedDates)
	assert.Equal(t, domain.Host{Name: "Erik", Superhost: true}, p.Host)
	assert.InDelta(t, -122.969, p.Coordinates.Lng, 1e-9)

	n, err := c.Neighborhood("nordic")
	require.NoError(t, err)
	assert.Equal(t, "Creekside Gondola", n.NearestLift)

	pl, err := c.Platform("vrbo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Whole homes"}, pl.KeyStrengths)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"syntax", "[[properties]\nid = ", ""},
		{"unknown field", "[[properties]]\nid = \"a\"\nbedroms = 2\n", "bedroms"},
		{"invalid record", "[[properties]]\nid = \"a\"\ntype = \"igloo\"\n", "igloo"},
		{"duplicate id", "[[platforms]]\nid = \"p\"\n[[platforms]]\nid = \"p\"\n", `duplicate platform id "p"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.content))
			assert.Nil(t, c)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Properties())
}

func TestEncode_RoundTrip(t *testing.T) {
	builtin := memory.Builtin()

	data, err := Encode(builtin)
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, builtin.Properties(), c.Properties())
	assert.Equal(t, builtin.Neighborhoods(), c.Neighborhoods())
	assert.Equal(t, builtin.Platforms(), c.Platforms())
}
