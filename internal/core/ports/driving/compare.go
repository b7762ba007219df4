package driving

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// CompareService builds side-by-side comparisons.
type CompareService interface {
	// Compare resolves 2 to 4 property ids and tabulates them.
	// checkIn and checkOut are optional and only used together.
	// Missing ids are reported together in a *domain.UnknownPropertyError.
	Compare(ctx context.Context, ids []string, checkIn, checkOut string) (*domain.Comparison, error)
}
