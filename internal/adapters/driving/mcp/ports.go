package mcp

import (
	"errors"

	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search backs the search_properties tool.
	Search driving.SearchService

	// Availability backs the check_availability tool.
	Availability driving.AvailabilityService

	// Compare backs the compare_properties tool.
	Compare driving.CompareService

	// Property backs the get_property_details tool.
	Property driving.PropertyService

	// Catalog backs resources and argument completion.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Every missing port is reported.
func (p *Ports) Validate() error {
	var errs []error
	if p.Search == nil {
		errs = append(errs, ErrMissingSearchService)
	}
	if p.Availability == nil {
		errs = append(errs, ErrMissingAvailabilityService)
	}
	if p.Compare == nil {
		errs = append(errs, ErrMissingCompareService)
	}
	if p.Property == nil {
		errs = append(errs, ErrMissingPropertyService)
	}
	if p.Catalog == nil {
		errs = append(errs, ErrMissingCatalogService)
	}
	return errors.Join(errs...)
}
