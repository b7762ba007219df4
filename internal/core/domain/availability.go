package domain

// AvailabilityResult is the answer to one availability query.
// It is computed per request and never stored.
type AvailabilityResult struct {
	PropertyID   string `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	Available    bool   `json:"available"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Nights       int    `json:"nights"`

	// PricePerNight is the season-adjusted nightly rate.
	PricePerNight int    `json:"pricePerNight"`
	CleaningFee   int    `json:"cleaningFee"`
	TotalPrice    int    `json:"totalPrice"`
	Currency      string `json:"currency"`

	// Season is the rate season of the check-in month.
	Season RateSeason `json:"season"`

	// MinimumStay is the property's minimum stay in nights.
	MinimumStay int `json:"minimumStay"`

	// ConflictingDates are the blocked dates inside the stay, ascending.
	ConflictingDates []string `json:"conflictingDates,omitempty"`
}
