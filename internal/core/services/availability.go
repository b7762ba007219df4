package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// Ensure AvailabilityService implements the interface.
var _ driving.AvailabilityService = (*AvailabilityService)(nil)

// Availability is the outcome of checking one stay against blocked dates.
type Availability struct {
	Range     domain.DateRange
	Available bool

	// ConflictingDates are the blocked dates in [CheckIn, CheckOut), ascending
	// and without duplicates.
	ConflictingDates []string
}

// IsAvailable checks a stay against the property's blocked dates and
// minimum stay. The stay is the half-open range [checkIn, checkOut), so a
// blocked date equal to checkOut does not conflict.
func IsAvailable(p *domain.Property, checkIn, checkOut string) (*Availability, error) {
	r, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if nights := r.Nights(); nights < p.MinimumStay {
		return nil, &domain.MinimumStayError{
			PropertyID: p.ID,
			Required:   p.MinimumStay,
			Requested:  nights,
		}
	}

	conflicts := blockedIn(p, r)
	return &Availability{
		Range:            r,
		Available:        len(conflicts) == 0,
		ConflictingDates: conflicts,
	}, nil
}

// blockedIn returns the blocked dates of p inside r, ascending and deduplicated.
// Unparseable blocked dates are skipped; catalog loaders reject them.
func blockedIn(p *domain.Property, r domain.DateRange) []string {
	seen := make(map[string]struct{})
	var conflicts []string
	for _, raw := range p.BlockedDates {
		d, err := domain.ParseDate(raw)
		if err != nil || !r.Contains(d) {
			continue
		}
		key := d.Format(domain.DateLayout)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		conflicts = append(conflicts, key)
	}
	sort.Strings(conflicts)
	return conflicts
}

// hasConflict reports whether any blocked date of p falls inside r.
func hasConflict(p *domain.Property, r domain.DateRange) bool {
	for _, raw := range p.BlockedDates {
		if d, err := domain.ParseDate(raw); err == nil && r.Contains(d) {
			return true
		}
	}
	return false
}

// AvailabilityService answers availability and pricing queries.
type AvailabilityService struct {
	catalog driven.Catalog
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(catalog driven.Catalog) *AvailabilityService {
	return &AvailabilityService{catalog: catalog}
}

// Check resolves the property, validates the stay and prices it at the
// check-in month's seasonal rate.
func (s *AvailabilityService) Check(
	_ context.Context, propertyID, checkIn, checkOut string,
) (*domain.AvailabilityResult, error) {
	logger.Section("Availability Check")
	logger.Debug("Property: %s, stay: %s to %s", propertyID, checkIn, checkOut)

	p, err := s.catalog.Property(propertyID)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", propertyID, err)
	}

	a, err := IsAvailable(&p, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	nights := a.Range.Nights()
	rate := NightlyRate(&p, a.Range.CheckIn)
	logger.Debug("Nights: %d, rate: %d, conflicts: %v", nights, rate, a.ConflictingDates)

	return &domain.AvailabilityResult{
		PropertyID:       p.ID,
		PropertyName:     p.Name,
		Available:        a.Available,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           nights,
		PricePerNight:    rate,
		CleaningFee:      p.CleaningFee,
		TotalPrice:       StayTotal(rate, nights, p.CleaningFee),
		Currency:         domain.Currency,
		Season:           domain.RateSeasonFor(a.Range.CheckIn.Month()),
		MinimumStay:      p.MinimumStay,
		ConflictingDates: a.ConflictingDates,
	}, nil
}
