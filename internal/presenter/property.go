package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/money"
)

// summaryAmenities is the number of amenities listed in a property summary.
const summaryAmenities = 6

// geohashPrecision gives cells of roughly 150m, enough to tell
// neighborhoods apart.
const geohashPrecision = 7

// PropertySummary renders the short search-result form of a property.
// With nights > 0 the listed-rate stay total is appended to the price line.
func PropertySummary(p *domain.Property, nights int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** (%s)\n", p.Name, p.ID)
	fmt.Fprintf(&b, "Resource: %s\n", services.ResourceURI(p.ID))
	fmt.Fprintf(&b, "Type: %s | %d BR / %d BA | Up to %d guests\n", p.Type, p.Bedrooms, p.Bathrooms, p.MaxGuests)
	fmt.Fprintf(&b, "Location: %s\n", p.NeighborhoodLabel())

	fmt.Fprintf(&b, "Price: %s/night + %s cleaning fee", money.CAD(p.PricePerNight), money.Amount(p.CleaningFee))
	if nights > 0 {
		fmt.Fprintf(&b, " | %s total (%s)", money.CAD(services.ListedStayTotal(p, nights)), plural(nights, "night"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Rating: %s/5 (%d reviews)\n", services.FormatRating(p.Rating), p.ReviewCount)
	if tags := p.Tags(); len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintf(&b, "Top amenities: %s", strings.Join(p.TopAmenities(summaryAmenities), ", "))

	return b.String()
}

// Details renders the full description of a property and its neighborhood.
func Details(d *domain.PropertyDetails) string {
	p := &d.Property
	n := d.Neighborhood
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", p.Name)
	fmt.Fprintf(&b, "**ID:** %s\n", p.ID)
	fmt.Fprintf(&b, "**Resource:** %s\n", services.ResourceURI(p.ID))
	fmt.Fprintf(&b, "**Type:** %s\n", p.Type)
	fmt.Fprintf(&b, "**Location:** %s", p.NeighborhoodLabel())
	if n != nil && n.NearestLift != "" {
		fmt.Fprintf(&b, " (%s)", n.NearestLift)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## Description\n%s\n\n", p.Description)

	b.WriteString("## Property Details\n")
	fmt.Fprintf(&b, "- **Bedrooms:** %d\n", p.Bedrooms)
	fmt.Fprintf(&b, "- **Bathrooms:** %d\n", p.Bathrooms)
	fmt.Fprintf(&b, "- **Max Guests:** %d\n", p.MaxGuests)
	fmt.Fprintf(&b, "- **Minimum Stay:** %s\n\n", plural(p.MinimumStay, "night"))

	b.WriteString("## Pricing\n")
	fmt.Fprintf(&b, "- **Nightly Rate:** %s\n", money.CAD(p.PricePerNight))
	fmt.Fprintf(&b, "- **Cleaning Fee:** %s\n\n", money.CAD(p.CleaningFee))

	b.WriteString("## Amenities\n")
	b.WriteString(bullets(p.Amenities, "None listed"))
	b.WriteString("\n")

	b.WriteString("## Ratings & Reviews\n")
	fmt.Fprintf(&b, "- **Rating:** %s/5 (%d reviews)\n\n", services.FormatRating(p.Rating), p.ReviewCount)

	b.WriteString("## Host\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", p.Host.Name)
	fmt.Fprintf(&b, "- **Superhost:** %s\n\n", yesNo(p.Host.Superhost))

	b.WriteString("## Tags\n")
	if tags := p.Tags(); len(tags) > 0 {
		b.WriteString(strings.Join(tags, ", "))
	} else {
		b.WriteString("None")
	}
	b.WriteString("\n\n")

	b.WriteString("## Availability\n")
	seasons := make([]string, len(p.AvailableSeasons))
	for i, s := range p.AvailableSeasons {
		seasons[i] = string(s)
	}
	fmt.Fprintf(&b, "- **Seasons:** %s\n", orNone(strings.Join(seasons, ", "), "None listed"))
	fmt.Fprintf(&b, "- **Blocked Dates:** %s\n\n", orNone(strings.Join(p.BlockedDates, ", "), "None, fully available"))

	b.WriteString("## Location\n")
	fmt.Fprintf(&b, "- **Coordinates:** %s, %s\n",
		strconv.FormatFloat(p.Coordinates.Lat, 'f', -1, 64),
		strconv.FormatFloat(p.Coordinates.Lng, 'f', -1, 64))
	fmt.Fprintf(&b, "- **Geohash:** %s\n", Geohash(p.Coordinates))

	if n != nil {
		fmt.Fprintf(&b, "\n## Neighborhood: %s\n%s\n", n.Name, n.Description)
		fmt.Fprintf(&b, "- Distance to village: %s\n", n.DistanceToVillage)
	}

	return b.String()
}

// Geohash returns the geohash cell of a position.
func Geohash(c domain.Coordinates) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, geohashPrecision)
}

// PropertyNotFound is the message for an unknown property id.
func PropertyNotFound(id string) string {
	return fmt.Sprintf("Property not found: %q. Use the search_properties tool to find valid property IDs.", id)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNone(s, none string) string {
	if s == "" {
		return none
	}
	return s
}

func bullets(items []string, none string) string {
	if len(items) == 0 {
		return none + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
