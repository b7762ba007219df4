package services

import (
	"math"
	"time"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// NightlyRate returns the listed rate adjusted by the rate season of the
// check-in month, rounded to whole dollars.
//
// The whole stay is priced at the check-in month's season even when it
// runs into another season.
func NightlyRate(p *domain.Property, checkIn time.Time) int {
	season := domain.RateSeasonFor(checkIn.Month())
	return int(math.Round(float64(p.PricePerNight) * season.Multiplier))
}

// StayTotal returns rate × nights plus the cleaning fee.
func StayTotal(rate, nights, cleaningFee int) int {
	return rate*nights + cleaningFee
}

// ListedStayTotal prices a stay at the listed, unadjusted rate.
// Search summaries and comparisons quote this figure.
func ListedStayTotal(p *domain.Property, nights int) int {
	return StayTotal(p.PricePerNight, nights, p.CleaningFee)
}
