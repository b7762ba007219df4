package domain

import "time"

// RateSeason is a pricing period with its multiplier on the listed rate.
type RateSeason struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Rate seasons, keyed by calendar month of check-in.
var (
	RateSeasonPeakWinter = RateSeason{Name: "peak winter", Multiplier: 1.2}
	RateSeasonSpringSki  = RateSeason{Name: "spring skiing", Multiplier: 1.0}
	RateSeasonSummer     = RateSeason{Name: "summer", Multiplier: 0.8}
	RateSeasonShoulder   = RateSeason{Name: "shoulder season", Multiplier: 0.7}
)

// RateSeasonFor returns the rate season for a month.
func RateSeasonFor(month time.Month) RateSeason {
	switch month {
	case time.December, time.January, time.February:
		return RateSeasonPeakWinter
	case time.March, time.April:
		return RateSeasonSpringSki
	case time.June, time.July, time.August:
		return RateSeasonSummer
	default:
		return RateSeasonShoulder
	}
}

// IsStandard reports whether the season leaves the listed rate unchanged.
func (s RateSeason) IsStandard() bool {
	return s.Multiplier == 1.0
}
