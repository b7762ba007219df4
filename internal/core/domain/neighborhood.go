package domain

// Neighborhood is a Whistler area properties are located in.
type Neighborhood struct {
	ID                string   `json:"id" toml:"id"`
	Name              string   `json:"name" toml:"name"`
	Description       string   `json:"description" toml:"description"`
	Highlights        []string `json:"highlights" toml:"highlights"`
	NearestLift       string   `json:"nearestLift" toml:"nearest_lift"`
	DistanceToVillage string   `json:"distanceToVillage" toml:"distance_to_village"`
	Elevation         string   `json:"elevation" toml:"elevation"`
}

// PropertyDetails is a property joined with its neighborhood.
// Neighborhood is nil when the property references an unknown area.
type PropertyDetails struct {
	Property     Property
	Neighborhood *Neighborhood
}
