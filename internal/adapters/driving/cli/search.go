package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/money"
	"github.com/custodia-labs/whistler-mcp/internal/presenter"
)

var (
	searchLocation    string
	searchCheckIn     string
	searchCheckOut    string
	searchMinBedrooms int
	searchMaxPrice    int
	searchSkiIn       bool
	searchPets        bool
	searchAmenities   []string
	searchType        string
	searchSort        string
	searchJSON        bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search rental properties",
	Long: `Search Whistler rental properties. Every given filter must match.

Dates only filter when both --check-in and --check-out are given; a
property matches when none of its blocked dates fall inside the stay.
Results are sorted by rating unless --sort is set.`,
	Example: `  whistler search --location creekside --min-bedrooms 2
  whistler search --ski-in --max-price 500 --sort price_asc
  whistler search --check-in 2026-01-10 --check-out 2026-01-14 --amenity hot-tub`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchLocation, "location", "l", "", "neighborhood or area, e.g. upper-village")
	f.StringVar(&searchCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	f.StringVar(&searchCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	f.IntVar(&searchMinBedrooms, "min-bedrooms", 0, "minimum number of bedrooms")
	f.IntVar(&searchMaxPrice, "max-price", 0, "maximum nightly price in CAD")
	f.BoolVar(&searchSkiIn, "ski-in", false, "only ski-in/ski-out properties")
	f.BoolVar(&searchPets, "pets", false, "only pet-friendly properties")
	f.StringSliceVarP(&searchAmenities, "amenity", "a", nil, "required amenity (repeatable)")
	f.StringVarP(&searchType, "type", "t", "", "property type: condo, chalet, townhouse or cabin")
	f.StringVarP(&searchSort, "sort", "s", "", "sort by price_asc, price_desc, rating or bedrooms")
	f.BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	filters := domain.SearchFilters{
		Location:     searchLocation,
		CheckIn:      searchCheckIn,
		CheckOut:     searchCheckOut,
		SkiInSkiOut:  searchSkiIn,
		PetFriendly:  searchPets,
		Amenities:    searchAmenities,
		PropertyType: searchType,
		SortBy:       domain.SortKey(searchSort),
	}
	if cmd.Flags().Changed("min-bedrooms") {
		filters.MinBedrooms = &searchMinBedrooms
	}
	if cmd.Flags().Changed("max-price") {
		filters.MaxPrice = &searchMaxPrice
	}

	result, err := searchService.Search(cmd.Context(), filters)
	if err != nil {
		return userError(err, "")
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}

	return outputSearchTable(cmd, result)
}

func outputSearchJSON(cmd *cobra.Command, result *domain.SearchResult) error {
	props := result.Properties
	if props == nil {
		props = []domain.Property{}
	}
	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, result *domain.SearchResult) error {
	if len(result.Properties) == 0 {
		cmd.Println(presenter.NoResults)
		return nil
	}

	nights := result.Nights()
	headers := []string{"ID", "Name", "Type", "Area", "BR", "Guests", "Price/Night", "Rating"}
	if nights > 0 {
		headers = append(headers, fmt.Sprintf("Total (%d nights)", nights))
	}

	t := newTable(cmd.OutOrStdout(), false, headers...)
	for i := range result.Properties {
		p := &result.Properties[i]
		row := []string{
			p.ID,
			p.Name,
			p.Type.String(),
			p.NeighborhoodLabel(),
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.MaxGuests),
			money.Amount(p.PricePerNight),
			services.FormatRating(p.Rating),
		}
		if nights > 0 {
			row = append(row, money.Amount(services.ListedStayTotal(p, nights)))
		}
		t.Row(row...)
	}

	cmd.Println(t.String())
	if n := len(result.Properties); n == 1 {
		cmd.Println("1 property found")
	} else {
		cmd.Printf("%d properties found\n", n)
	}
	return nil
}

// userError turns a query failure into the message shown to the user.
func userError(err error, propertyID string) error {
	return errors.New(presenter.ErrorMessage(err, propertyID))
}
