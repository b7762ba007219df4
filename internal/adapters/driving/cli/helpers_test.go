package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	configmem "github.com/custodia-labs/whistler-mcp/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
)

func testCatalog(t *testing.T) *memory.Catalog {
	t.Helper()
	catalog, err := memory.New(
		[]domain.Property{
			{ID: "creek-condo", Name: "Creekside Condo", Type: domain.PropertyTypeCondo, Neighborhood: "creekside",
				Bedrooms: 2, Bathrooms: 1, MaxGuests: 4, PricePerNight: 500, CleaningFee: 150,
				Rating: 4.7, ReviewCount: 12, SkiInSkiOut: true, MinimumStay: 3,
				Amenities: []string{"Hot Tub", "WiFi"}, BlockedDates: []string{"2025-02-01"},
				Coordinates: domain.Coordinates{Lat: 50.0906, Lng: -122.9838}},
			{ID: "big-chalet", Name: "Big Chalet", Type: domain.PropertyTypeChalet, Neighborhood: "kadenwood",
				Bedrooms: 5, Bathrooms: 4, MaxGuests: 10, PricePerNight: 1800, CleaningFee: 400,
				Rating: 4.9, ReviewCount: 30, SkiInSkiOut: true, PetFriendly: true, MinimumStay: 4,
				Amenities: []string{"Hot Tub", "Sauna"}},
			{ID: "valley-house", Name: "Valley House", Type: domain.PropertyTypeTownhouse, Neighborhood: "nordic",
				Bedrooms: 3, Bathrooms: 2, MaxGuests: 6, PricePerNight: 350, CleaningFee: 120,
				Rating: 4.4, ReviewCount: 8, MinimumStay: 2,
				Amenities: []string{"WiFi"}},
		},
		[]domain.Neighborhood{
			{ID: "creekside", Name: "Creekside", Description: "Quiet base area.", NearestLift: "Creekside Gondola"},
			{ID: "nordic", Name: "Nordic", Description: "Hillside homes.", Elevation: "700m"},
		},
		[]domain.Platform{
			{ID: "airbnb", Name: "Airbnb", URL: "https://www.airbnb.ca", PropertyCount: "1000+",
				BestFor: "Variety", KeyStrengths: []string{"Largest selection"}},
		},
	)
	require.NoError(t, err)
	return catalog
}

// setupTestServices wires every command service over the test catalog and
// an in-memory config store.
func setupTestServices(t *testing.T) {
	t.Helper()

	wireServices(testCatalog(t))
	settingsService = services.NewSettingsService(configmem.NewConfigStore(nil))
	settings := domain.DefaultSettings()
	activeSettings = &settings

	t.Cleanup(resetServices)
}

func resetServices() {
	searchService = nil
	availabilityService = nil
	compareService = nil
	propertyService = nil
	catalogService = nil
	settingsService = nil
	activeCatalog = nil
	activeSettings = nil
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so runs do not leak
// values or Changed state into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
