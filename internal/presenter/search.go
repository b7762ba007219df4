package presenter

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// NoResults is shown when a search matches nothing.
const NoResults = "No properties found matching your criteria. " +
	"Try adjusting your filters (fewer amenities, higher price range, or different dates)."

// SearchResults renders a search result with a header line and one
// summary per property, separated by rules.
func SearchResults(r *domain.SearchResult, location string) string {
	if len(r.Properties) == 0 {
		return NoResults
	}

	nights := r.Nights()

	var b strings.Builder
	if len(r.Properties) == 1 {
		b.WriteString("Found 1 property in Whistler")
	} else {
		fmt.Fprintf(&b, "Found %d properties in Whistler", len(r.Properties))
	}
	if location != "" {
		fmt.Fprintf(&b, " (%s)", location)
	}
	if nights > 0 {
		fmt.Fprintf(&b, " for %s", plural(nights, "night"))
	}
	b.WriteString(":\n\n")

	for i := range r.Properties {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		b.WriteString(PropertySummary(&r.Properties[i], nights))
	}
	return b.String()
}
