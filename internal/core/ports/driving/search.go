package driving

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// SearchService provides filtered property search to external actors.
type SearchService interface {
	// Search returns the properties matching every supplied filter,
	// sorted by filters.SortBy. No matches is an empty result, not an error.
	Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error)
}
