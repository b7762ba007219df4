package domain

// Platform is a booking platform listing Whistler rentals.
type Platform struct {
	ID            string   `json:"id" toml:"id"`
	Name          string   `json:"name" toml:"name"`
	URL           string   `json:"url" toml:"url"`
	Description   string   `json:"description" toml:"description"`
	KeyStrengths  []string `json:"keyStrengths" toml:"key_strengths"`
	FeeNotes      string   `json:"feeNotes" toml:"fee_notes"`
	WhistlerFocus string   `json:"whistlerFocus" toml:"whistler_focus"`

	// PropertyCount is a display string such as "200+", not a real count.
	PropertyCount string `json:"propertyCount" toml:"property_count"`
	BestFor       string `json:"bestFor" toml:"best_for"`
}
