// Package tui provides an interactive terminal browser for the rental catalog.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Search runs filtered property searches.
	Search driving.SearchService

	// Property loads one property with its neighborhood.
	Property driving.PropertyService

	// Catalog lists neighborhoods and platforms for the guide pages.
	Catalog driving.CatalogService
}

// Validate reports every missing port.
func (p *Ports) Validate() error {
	var errs []error
	if p.Search == nil {
		errs = append(errs, ErrMissingSearchService)
	}
	if p.Property == nil {
		errs = append(errs, ErrMissingPropertyService)
	}
	if p.Catalog == nil {
		errs = append(errs, ErrMissingCatalogService)
	}
	return errors.Join(errs...)
}
