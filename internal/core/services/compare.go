package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
	"github.com/custodia-labs/whistler-mcp/internal/money"
)

// Ensure CompareService implements the interface.
var _ driving.CompareService = (*CompareService)(nil)

// compareAmenities is the number of amenities shown per property.
const compareAmenities = 5

// ResourceURI returns the MCP resource URI of a property.
func ResourceURI(id string) string {
	return "whistler://properties/" + id
}

// Compare resolves between domain.MinCompare and domain.MaxCompare ids and
// lays them out one column per property, in request order. When both dates
// are given, a listed-rate total row and an availability row are added.
func Compare(catalog driven.Catalog, ids []string, checkIn, checkOut string) (*domain.Comparison, error) {
	if len(ids) < domain.MinCompare {
		return nil, fmt.Errorf("%w: got %d, need at least %d", domain.ErrTooFewTargets, len(ids), domain.MinCompare)
	}
	if len(ids) > domain.MaxCompare {
		return nil, fmt.Errorf("%w: got %d, at most %d", domain.ErrTooManyTargets, len(ids), domain.MaxCompare)
	}

	props := make([]domain.Property, 0, len(ids))
	var missing []string
	for _, id := range ids {
		p, err := catalog.Property(id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			missing = append(missing, id)
			continue
		case err != nil:
			return nil, fmt.Errorf("property %q: %w", id, err)
		}
		props = append(props, p)
	}
	if len(missing) > 0 {
		return nil, &domain.UnknownPropertyError{IDs: missing}
	}

	var stay *domain.DateRange
	if checkIn != "" && checkOut != "" {
		r, err := domain.NewDateRange(checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		stay = &r
	}

	return &domain.Comparison{
		Properties: props,
		Rows:       comparisonRows(props, stay),
		Range:      stay,
	}, nil
}

func comparisonRows(props []domain.Property, stay *domain.DateRange) []domain.ComparisonRow {
	row := func(label string, value func(p *domain.Property) string) domain.ComparisonRow {
		values := make([]string, len(props))
		for i := range props {
			values[i] = value(&props[i])
		}
		return domain.ComparisonRow{Label: label, Values: values}
	}

	rows := []domain.ComparisonRow{
		row("Name", func(p *domain.Property) string { return p.Name }),
		row("Resource", func(p *domain.Property) string { return ResourceURI(p.ID) }),
		row("Type", func(p *domain.Property) string { return p.Type.String() }),
		row("Neighborhood", func(p *domain.Property) string { return p.NeighborhoodLabel() }),
		row("Bedrooms", func(p *domain.Property) string { return strconv.Itoa(p.Bedrooms) }),
		row("Bathrooms", func(p *domain.Property) string { return strconv.Itoa(p.Bathrooms) }),
		row("Max Guests", func(p *domain.Property) string { return strconv.Itoa(p.MaxGuests) }),
		row("Price/Night", func(p *domain.Property) string { return money.CAD(p.PricePerNight) }),
		row("Cleaning Fee", func(p *domain.Property) string { return money.CAD(p.CleaningFee) }),
	}

	if stay != nil {
		nights := stay.Nights()
		r := *stay
		rows = append(rows,
			row(fmt.Sprintf("Total (%d nights)", nights), func(p *domain.Property) string {
				return money.CAD(ListedStayTotal(p, nights))
			}),
			row("Available", func(p *domain.Property) string {
				return yesNo(!hasConflict(p, r))
			}),
		)
	}

	return append(rows,
		row("Rating", func(p *domain.Property) string {
			return fmt.Sprintf("%s/5 (%d reviews)", FormatRating(p.Rating), p.ReviewCount)
		}),
		row("Ski-In/Ski-Out", func(p *domain.Property) string { return yesNo(p.SkiInSkiOut) }),
		row("Pet-Friendly", func(p *domain.Property) string { return yesNo(p.PetFriendly) }),
		row("Min Stay", func(p *domain.Property) string { return fmt.Sprintf("%d nights", p.MinimumStay) }),
		row("Top Amenities", func(p *domain.Property) string {
			return strings.Join(p.TopAmenities(compareAmenities), ", ")
		}),
	)
}

// FormatRating renders a rating without trailing zeros, e.g. "4.8" or "5".
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// CompareService builds property comparisons from the catalog.
type CompareService struct {
	catalog driven.Catalog
}

// NewCompareService creates a new compare service.
func NewCompareService(catalog driven.Catalog) *CompareService {
	return &CompareService{catalog: catalog}
}

// Compare tabulates the given properties.
func (s *CompareService) Compare(
	_ context.Context, ids []string, checkIn, checkOut string,
) (*domain.Comparison, error) {
	logger.Section("Property Comparison")
	logger.Debug("IDs: %v, stay: %q to %q", ids, checkIn, checkOut)
	return Compare(s.catalog, ids, checkIn, checkOut)
}
