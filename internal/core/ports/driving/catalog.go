package driving

import (
	"context"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// ID kinds accepted by CatalogService.CompleteID.
const (
	KindProperty     = "property"
	KindNeighborhood = "neighborhood"
	KindPlatform     = "platform"
)

// CatalogService lets external actors browse the catalog.
type CatalogService interface {
	// ListProperties returns every property in catalog order.
	ListProperties(ctx context.Context) []domain.Property

	// GetProperty returns one property or domain.ErrNotFound.
	GetProperty(ctx context.Context, id string) (*domain.Property, error)

	// ListNeighborhoods returns every neighborhood in catalog order.
	ListNeighborhoods(ctx context.Context) []domain.Neighborhood

	// GetNeighborhood returns one neighborhood or domain.ErrNotFound.
	GetNeighborhood(ctx context.Context, id string) (*domain.Neighborhood, error)

	// ListPlatforms returns every booking platform in catalog order.
	ListPlatforms(ctx context.Context) []domain.Platform

	// GetPlatform returns one platform or domain.ErrNotFound.
	GetPlatform(ctx context.Context, id string) (*domain.Platform, error)

	// CompleteID returns the ids of the given kind starting with prefix,
	// ignoring case. Unknown kinds complete to nothing.
	CompleteID(ctx context.Context, kind, prefix string) []string
}
