package memory

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// Validate checks catalog records before they are loaded.
// Property neighborhoods are not required to exist.
func Validate(
	properties []domain.Property,
	neighborhoods []domain.Neighborhood,
	platforms []domain.Platform,
) error {
	var errs []error

	seen := make(map[string]bool, len(properties))
	for i := range properties {
		errs = append(errs, validateProperty(&properties[i], seen)...)
	}

	seen = make(map[string]bool, len(neighborhoods))
	for _, n := range neighborhoods {
		if err := checkID("neighborhood", n.ID, seen); err != nil {
			errs = append(errs, err)
		}
	}

	seen = make(map[string]bool, len(platforms))
	for _, p := range platforms {
		if err := checkID("platform", p.ID, seen); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func checkID(kind, id string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%s with empty id", kind)
	}
	if seen[id] {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	seen[id] = true
	return nil
}

func validateProperty(p *domain.Property, seen map[string]bool) []error {
	var errs []error
	if err := checkID("property", p.ID, seen); err != nil {
		errs = append(errs, err)
	}

	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("property %q: "+format, append([]any{p.ID}, args...)...))
	}

	if !p.Type.IsValid() {
		bad("unknown type %q", p.Type)
	}
	if p.Bedrooms < 1 || p.Bathrooms < 1 || p.MaxGuests < 1 {
		bad("bedrooms, bathrooms and max guests must be positive")
	}
	if p.PricePerNight < 0 || p.CleaningFee < 0 {
		bad("negative price")
	}
	if p.Rating < 0 || p.Rating > 5 {
		bad("rating %v outside 0-5", p.Rating)
	}
	if p.ReviewCount < 0 {
		bad("negative review count")
	}
	if p.MinimumStay < 1 {
		bad("minimum stay must be at least 1 night")
	}
	for _, s := range p.AvailableSeasons {
		if !s.IsValid() {
			bad("unknown season %q", s)
		}
	}
	for _, d := range p.BlockedDates {
		if _, err := domain.ParseDate(d); err != nil {
			bad("blocked date: %v", err)
		}
	}
	return errs
}
