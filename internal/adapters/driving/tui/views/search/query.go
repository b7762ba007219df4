package search

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// ParseQuery turns a free-form query into search filters.
//
//	2br              at least two bedrooms
//	<400, max:400    listed nightly rate at most 400
//	ski, pets        ski-in/ski-out, pet-friendly
//	condo            property type
//	+hot-tub         required amenity, matched as written
//	in:2025-02-10    check-in, only used together with out:
//	sort:price_asc   result order
//
// Remaining words form the location, joined with hyphens so that
// "upper village" matches the upper-village neighborhood.
func ParseQuery(query string) domain.SearchFilters {
	var f domain.SearchFilters
	var location []string

	for _, tok := range strings.Fields(strings.ToLower(query)) {
		switch {
		case tok == "ski" || tok == "ski-in":
			f.SkiInSkiOut = true
		case tok == "pets" || tok == "pet-friendly":
			f.PetFriendly = true
		case domain.PropertyType(tok).IsValid():
			f.PropertyType = tok
		case strings.HasPrefix(tok, "+") && len(tok) > 1:
			f.Amenities = append(f.Amenities, tok[1:])
		case strings.HasPrefix(tok, "in:"):
			f.CheckIn = strings.TrimPrefix(tok, "in:")
		case strings.HasPrefix(tok, "out:"):
			f.CheckOut = strings.TrimPrefix(tok, "out:")
		case strings.HasPrefix(tok, "sort:"):
			f.SortBy = domain.SortKey(strings.TrimPrefix(tok, "sort:"))
		default:
			if n, ok := bedrooms(tok); ok {
				f.MinBedrooms = &n
			} else if n, ok := maxPrice(tok); ok {
				f.MaxPrice = &n
			} else {
				location = append(location, tok)
			}
		}
	}

	f.Location = strings.Join(location, "-")
	return f
}

// bedrooms parses "3br".
func bedrooms(tok string) (int, bool) {
	num, ok := strings.CutSuffix(tok, "br")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	return n, err == nil && n >= 0
}

// maxPrice parses "<400", "<$400" and "max:400".
func maxPrice(tok string) (int, bool) {
	num, ok := strings.CutPrefix(tok, "<")
	if !ok {
		num, ok = strings.CutPrefix(tok, "max:")
	}
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(num, "$"))
	return n, err == nil && n >= 0
}

// sortCycle is the order the sort key steps through.
var sortCycle = []domain.SortKey{
	domain.SortRating,
	domain.SortPriceAsc,
	domain.SortPriceDesc,
	domain.SortBedrooms,
}

// nextSort returns the sort key after k. Unknown and empty keys start
// from the default rating order.
func nextSort(k domain.SortKey) domain.SortKey {
	if k == "" {
		k = domain.SortRating
	}
	for i, s := range sortCycle {
		if s == k {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return domain.SortRating
}
