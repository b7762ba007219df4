package domain

import "strings"

// PropertyType is the kind of building a listing is in.
type PropertyType string

// Available property types.
const (
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeChalet    PropertyType = "chalet"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeCabin     PropertyType = "cabin"
)

// IsValid returns true if the property type is recognised.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeCondo, PropertyTypeChalet, PropertyTypeTownhouse, PropertyTypeCabin:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t PropertyType) String() string {
	return string(t)
}

// Season is a part of the year a property is marketed for.
type Season string

// Available seasons.
const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// IsValid returns true if the season is recognised.
func (s Season) IsValid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall:
		return true
	default:
		return false
	}
}

// Currency is the currency every catalog amount is expressed in.
const Currency = "CAD"

// Host is the person or company renting out a property.
type Host struct {
	Name      string `json:"name" toml:"name"`
	Superhost bool   `json:"superhost" toml:"superhost"`
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lng float64 `json:"lng" toml:"lng"`
}

// Property is a single vacation rental listing.
// Amounts are whole Canadian dollars.
type Property struct {
	ID           string       `json:"id" toml:"id"`
	Name         string       `json:"name" toml:"name"`
	Type         PropertyType `json:"type" toml:"type"`
	Neighborhood string       `json:"neighborhood" toml:"neighborhood"`
	Description  string       `json:"description" toml:"description"`

	Bedrooms  int `json:"bedrooms" toml:"bedrooms"`
	Bathrooms int `json:"bathrooms" toml:"bathrooms"`
	MaxGuests int `json:"maxGuests" toml:"max_guests"`

	Amenities   []string `json:"amenities" toml:"amenities"`
	SkiInSkiOut bool     `json:"skiInSkiOut" toml:"ski_in_ski_out"`
	PetFriendly bool     `json:"petFriendly" toml:"pet_friendly"`

	PricePerNight int `json:"pricePerNight" toml:"price_per_night"`
	CleaningFee   int `json:"cleaningFee" toml:"cleaning_fee"`

	Images      []string    `json:"images" toml:"images"`
	Rating      float64     `json:"rating" toml:"rating"`
	ReviewCount int         `json:"reviewCount" toml:"review_count"`
	Host        Host        `json:"host" toml:"host"`
	Coordinates Coordinates `json:"coordinates" toml:"coordinates"`

	AvailableSeasons []Season `json:"availableSeasons" toml:"available_seasons"`

	// MinimumStay is the shortest bookable stay in nights.
	MinimumStay int `json:"minimumStay" toml:"minimum_stay"`

	// BlockedDates are ISO dates (YYYY-MM-DD) that cannot be booked.
	// Order is not significant and duplicates are tolerated.
	BlockedDates []string `json:"blockedDates" toml:"blocked_dates"`
}

// NeighborhoodLabel returns the neighborhood id in human-readable form,
// with hyphens replaced by spaces.
func (p *Property) NeighborhoodLabel() string {
	return HumanizeID(p.Neighborhood)
}

// HasAmenity reports whether the property lists the amenity, ignoring case.
func (p *Property) HasAmenity(amenity string) bool {
	for _, a := range p.Amenities {
		if strings.EqualFold(a, amenity) {
			return true
		}
	}
	return false
}

// TopAmenities returns at most n amenities in listing order.
func (p *Property) TopAmenities(n int) []string {
	if n >= len(p.Amenities) {
		return p.Amenities
	}
	return p.Amenities[:n]
}

// Tags returns display tags for the boolean features of a property.
func (p *Property) Tags() []string {
	var tags []string
	if p.SkiInSkiOut {
		tags = append(tags, "Ski-In/Ski-Out")
	}
	if p.PetFriendly {
		tags = append(tags, "Pet-Friendly")
	}
	if p.Host.Superhost {
		tags = append(tags, "Superhost")
	}
	return tags
}

// HumanizeID replaces hyphens with spaces.
func HumanizeID(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}
