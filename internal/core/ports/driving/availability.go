package driving

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// AvailabilityService checks and prices a stay at one property.
type AvailabilityService interface {
	// Check returns availability and season-adjusted pricing for the stay.
	// Fails with domain.ErrNotFound, domain.ErrInvalidDate,
	// domain.ErrInvalidRange or a *domain.MinimumStayError.
	Check(ctx context.Context, propertyID, checkIn, checkOut string) (*domain.AvailabilityResult, error)
}
