package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	require.NotNil(t, c)

	assert.Len(t, c.Properties(), 12)
	assert.Len(t, c.Neighborhoods(), 7)
	assert.Len(t, c.Platforms(), 5)
	assert.Same(t, c, Builtin())
}

func TestBuiltin_Valid(t *testing.T) {
	assert.NoError(t, Validate(builtinProperties, builtinNeighborhoods, builtinPlatforms))
}

func TestBuiltin_PropertiesReferenceKnownNeighborhoods(t *testing.T) {
	c := Builtin()
	for _, p := range c.Properties() {
		_, err := c.Neighborhood(p.Neighborhood)
		assert.NoError(t, err, "property %s", p.ID)
	}
}

func TestBuiltin_CoversEveryPropertyType(t *testing.T) {
	types := make(map[domain.PropertyType]bool)
	for _, p := range Builtin().Properties() {
		types[p.Type] = true
	}
	for _, want := range []domain.PropertyType{
		domain.PropertyTypeCondo, domain.PropertyTypeChalet,
		domain.PropertyTypeTownhouse, domain.PropertyTypeCabin,
	} {
		assert.True(t, types[want], "no %s in builtin catalog", want)
	}
}

func TestBuiltin_NoLargeCheapSkiInProperty(t *testing.T) {
	for _, p := range Builtin().Properties() {
		large := p.Bedrooms >= 3
		cheap := p.PricePerNight <= 400
		assert.False(t, large && cheap && p.SkiInSkiOut, "property %s", p.ID)
	}
}
