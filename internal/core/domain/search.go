package domain

// SortKey selects the order of search results.
type SortKey string

// Available sort keys.
const (
	// SortPriceAsc orders by listed nightly price, cheapest first.
	SortPriceAsc SortKey = "price_asc"

	// SortPriceDesc orders by listed nightly price, most expensive first.
	SortPriceDesc SortKey = "price_desc"

	// SortRating orders by rating, best first. This is the default.
	SortRating SortKey = "rating"

	// SortBedrooms orders by bedroom count, largest first.
	SortBedrooms SortKey = "bedrooms"
)

// IsValid returns true if the sort key is recognised.
// The empty key is valid and means the default order.
func (k SortKey) IsValid() bool {
	switch k {
	case "", SortPriceAsc, SortPriceDesc, SortRating, SortBedrooms:
		return true
	default:
		return false
	}
}

// SearchFilters holds the optional search predicates.
// Every supplied field must match (logical AND); zero values impose nothing.
type SearchFilters struct {
	// Location matches the neighborhood id or its spaced form, case-insensitively.
	Location string

	// CheckIn and CheckOut only filter when both are set.
	CheckIn  string
	CheckOut string

	// MinBedrooms keeps properties with at least this many bedrooms.
	MinBedrooms *int

	// MaxPrice keeps properties whose listed nightly rate is at most this.
	MaxPrice *int

	// SkiInSkiOut and PetFriendly restrict only when true.
	SkiInSkiOut bool
	PetFriendly bool

	// Amenities must all be present, compared case-insensitively.
	Amenities []string

	// PropertyType matches the type exactly, ignoring case.
	PropertyType string

	SortBy SortKey
}

// HasDates reports whether the date filter is active.
func (f *SearchFilters) HasDates() bool {
	return f.CheckIn != "" && f.CheckOut != ""
}

// SearchResult is the ordered outcome of a search.
type SearchResult struct {
	Properties []Property

	// Range is set when the search was constrained by dates.
	Range *DateRange
}

// Nights returns the stay length of a dated search, or 0.
func (r *SearchResult) Nights() int {
	if r.Range == nil {
		return 0
	}
	return r.Range.Nights()
}
