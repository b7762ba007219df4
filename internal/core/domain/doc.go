// Package domain defines the core entities for the Whistler rental catalog.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Property: A rentable listing with pricing and blocked dates
//   - Neighborhood: A Whistler area that properties belong to
//   - Platform: A booking platform operating in Whistler
//   - DateRange: A half-open [check-in, check-out) stay
//   - AvailabilityResult: A priced availability answer for one stay
//   - Comparison: A row-oriented side-by-side view of properties
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
