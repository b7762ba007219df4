package presenter

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

const areaGuideIntro = `# Whistler, BC: Vacation Rental Area Guide

## Overview
Whistler is a resort town 125 km north of Vancouver, British Columbia. It is home to Whistler Blackcomb, the largest ski resort in North America, and draws over 3 million visitors a year for skiing, snowboarding, mountain biking and hiking.

## Quick Facts
- **Location:** Sea-to-Sky corridor, 125 km north of Vancouver
- **Elevation:** Village at 675m, peak at 2,284m (Whistler Mountain)
- **Ski Season:** Late November to late May (conditions permitting)
- **Summer Season:** June to September
- **Ski Area:** 8,171 acres across Whistler and Blackcomb mountains
- **Annual Snowfall:** Average 11.7 meters (38.4 feet)

## Getting There
- **Drive:** ~1.5 hours from Vancouver via the Sea-to-Sky Highway (Hwy 99)
- **Bus:** Epic Rides, Whistler Shuttles and BC Transit operate routes from Vancouver
- **Fly:** Nearest airport is Vancouver International (YVR)

`

const areaGuideOutro = `
## Skiing & Snowboarding
- **Whistler Mountain:** 100+ marked runs, 3 glaciers, expert terrain up top and beginner runs lower down
- **Blackcomb Mountain:** 100+ marked runs, the Blackcomb Glacier, steep couloirs and family-friendly green runs
- **Peak 2 Peak Gondola:** Connects the two mountains with a 4.4 km span, 436m above the valley
- **Lift Ticket (2025/26):** ~$90-$230 CAD/day depending on date and advance purchase

## Dining Highlights
- **Fine Dining:** Araxi, Bearfoot Bistro, Il Caminetto, Rim Rock Cafe
- **Casual:** Splitz Grill (burgers), Peaked Pies (Aussie pies), Purebread (bakery)
- **Après-Ski:** GLC, Merlin's, Longhorn Saloon, Garibaldi Lift Co.

## Summer Activities
- Mountain biking (Whistler Bike Park), hiking, zip-lining, golf, canoeing on Alta Lake, bungee jumping, ATV tours, bear viewing

## Tips for Visitors
1. Book accommodation 3-6 months in advance for peak winter dates
2. The free village shuttle connects all major neighborhoods
3. Grocery stores: Whistler Marketplace IGA, Creekside Market, Fresh St. Market
4. Rent ski gear in advance online for discounts (20-30% off walk-in rates)
5. Consider shoulder season (early Dec, late Apr) for fewer crowds and lower prices
`

// AreaGuide renders the Whistler area guide with a section per neighborhood.
func AreaGuide(hoods []domain.Neighborhood) string {
	var b strings.Builder
	b.WriteString(areaGuideIntro)
	b.WriteString("## Neighborhoods\n")
	for i, n := range hoods {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n%s\n", n.Name, n.Description)
		fmt.Fprintf(&b, "- **Nearest Lift:** %s\n", n.NearestLift)
		fmt.Fprintf(&b, "- **Distance to Village:** %s\n", n.DistanceToVillage)
	}
	b.WriteString(areaGuideOutro)
	return b.String()
}

// NeighborhoodDetail renders one neighborhood with highlights and access.
func NeighborhoodDetail(n *domain.Neighborhood) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", n.Name, n.Description)
	b.WriteString("## Highlights\n")
	b.WriteString(bullets(n.Highlights, "None listed"))
	b.WriteString("\n## Access\n")
	fmt.Fprintf(&b, "- **Nearest Lift:** %s\n", n.NearestLift)
	fmt.Fprintf(&b, "- **Distance to Village:** %s\n", n.DistanceToVillage)
	fmt.Fprintf(&b, "- **Elevation:** %s\n", n.Elevation)
	return b.String()
}

// NeighborhoodNotFound is the message for an unknown neighborhood id.
func NeighborhoodNotFound(id string, available []string) string {
	return fmt.Sprintf("Neighborhood not found: %s. Available: %s", id, strings.Join(available, ", "))
}

const platformTips = `
---

## Tips for Choosing a Platform
1. **Direct booking** with local managers (Whistler Platinum, Blackcomb Peaks) often saves 10-15% vs Airbnb/VRBO
2. **AlluraDirect** is the best budget option with the lowest fees
3. **Whistler.com** is the safest bet for first-time visitors, verified and official
4. **Blackcomb Peaks** is the go-to for ski-in/ski-out with 90+ options
5. **Whistler Blackcomb** is ideal if you want lift tickets bundled with lodging
6. Always compare the same property across platforms, since some list on multiple sites at different prices
`

// PlatformsGuide renders the booking platform overview table followed by
// a section per platform.
func PlatformsGuide(plats []domain.Platform) string {
	var b strings.Builder
	b.WriteString("# Whistler Vacation Rental Booking Platforms\n\n")
	b.WriteString("Real platforms where you can book Whistler vacation rentals, beyond the usual Airbnb and VRBO.\n\n")
	b.WriteString("| Platform | Properties | Best For | Key Strength |\n")
	b.WriteString("|----------|-----------|----------|--------------|\n")
	for _, p := range plats {
		strength := ""
		if len(p.KeyStrengths) > 0 {
			strength = p.KeyStrengths[0]
		}
		fmt.Fprintf(&b, "| [%s](%s) | %s | %s | %s |\n", p.Name, p.URL, p.PropertyCount, p.BestFor, strength)
	}
	b.WriteString("\n---\n\n")

	for i, p := range plats {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", p.Name, p.Description)
		fmt.Fprintf(&b, "- **Website:** %s\n", p.URL)
		fmt.Fprintf(&b, "- **Whistler Properties:** %s\n", p.PropertyCount)
		fmt.Fprintf(&b, "- **Fees/Notes:** %s\n", p.FeeNotes)
		fmt.Fprintf(&b, "- **Whistler Focus:** %s\n", p.WhistlerFocus)
		fmt.Fprintf(&b, "- **Best For:** %s\n\n", p.BestFor)
		b.WriteString("**Key Strengths:**\n")
		b.WriteString(bullets(p.KeyStrengths, "None listed"))
	}

	b.WriteString(platformTips)
	return b.String()
}
