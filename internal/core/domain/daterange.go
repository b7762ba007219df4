package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on every interface.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date. RFC 3339 timestamps are accepted
// and truncated to their calendar day. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
}

// DateRange is the half-open stay [CheckIn, CheckOut).
// The check-out day itself is not occupied.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange parses both dates and requires CheckOut to be after CheckIn.
func NewDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	if !out.After(in) {
		return DateRange{}, fmt.Errorf("%w: %s to %s", ErrInvalidRange, checkIn, checkOut)
	}
	return DateRange{CheckIn: in, CheckOut: out}, nil
}

// Nights returns the number of nights, rounded to the nearest whole day.
func (r DateRange) Nights() int {
	return int(math.Round(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
}

// Contains reports whether d falls in [CheckIn, CheckOut).
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// String renders the range as "YYYY-MM-DD to YYYY-MM-DD".
func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + " to " + r.CheckOut.Format(DateLayout)
}
