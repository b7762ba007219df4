package driving

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// PropertyService exposes single-property lookups.
type PropertyService interface {
	// Details returns the property joined with its neighborhood.
	// Returns domain.ErrNotFound if the property does not exist.
	Details(ctx context.Context, id string) (*domain.PropertyDetails, error)
}
