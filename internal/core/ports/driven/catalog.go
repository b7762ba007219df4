package driven

import "github.com/custodia-labs/whistler-mcp/internal/core/domain"

// Catalog provides read-only access to the rental catalog.
// A catalog is fully loaded before it is handed to the core and never
// changes afterwards, so implementations are safe for concurrent use
// without locking.
type Catalog interface {
	// Properties returns every property in catalog order.
	Properties() []domain.Property

	// Property returns the property with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Property(id string) (domain.Property, error)

	// Neighborhoods returns every neighborhood in catalog order.
	Neighborhoods() []domain.Neighborhood

	// Neighborhood returns the neighborhood with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Neighborhood(id string) (domain.Neighborhood, error)

	// Platforms returns every booking platform in catalog order.
	Platforms() []domain.Platform

	// Platform returns the platform with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Platform(id string) (domain.Platform, error)
}
