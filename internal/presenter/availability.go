package presenter

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
	"github.com/custodia-labs/whistler-mcp/internal/money"
)

// Availability renders an availability check. Available stays get a
// price breakdown; unavailable ones list the conflicting dates.
func Availability(r *domain.AvailabilityResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Availability: %s\n", r.PropertyName)
	fmt.Fprintf(&b, "**Resource:** %s\n\n", services.ResourceURI(r.PropertyID))

	if !r.Available {
		b.WriteString("**Not Available.** This property has blocked dates that overlap with your request.\n\n")
		fmt.Fprintf(&b, "- Requested: %s to %s (%s)\n", r.CheckIn, r.CheckOut, plural(r.Nights, "night"))
		fmt.Fprintf(&b, "- Conflicting dates: %s\n\n", strings.Join(r.ConflictingDates, ", "))
		b.WriteString("Consider adjusting your dates or searching for alternative properties.")
		return b.String()
	}

	rate := money.CAD(r.PricePerNight)
	if !r.Season.IsStandard() {
		rate += fmt.Sprintf(" (%s rate)", r.Season.Name)
	}

	b.WriteString("**Available!** This property is open for your requested dates.\n\n")
	b.WriteString("| Detail | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Check-in | %s |\n", r.CheckIn)
	fmt.Fprintf(&b, "| Check-out | %s |\n", r.CheckOut)
	fmt.Fprintf(&b, "| Nights | %d |\n", r.Nights)
	fmt.Fprintf(&b, "| Nightly Rate | %s |\n", rate)
	fmt.Fprintf(&b, "| Cleaning Fee | %s |\n", money.CAD(r.CleaningFee))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n\n", money.CAD(r.TotalPrice))
	fmt.Fprintf(&b, "Minimum stay: %s", plural(r.MinimumStay, "night"))

	return b.String()
}

// MinimumStay is the message for a stay shorter than the property allows.
func MinimumStay(e *domain.MinimumStayError) string {
	return fmt.Sprintf("This property requires a minimum stay of %s. You requested %s.",
		plural(e.Required, "night"), plural(e.Requested, "night"))
}
