package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent query failures reported back to the caller.
// None of them is fatal to the server process.
var (
	// ErrNotFound indicates a requested property, neighborhood or platform does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate indicates a date string that is not a calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange indicates a check-out that is not after the check-in.
	ErrInvalidRange = errors.New("check-out must be after check-in")

	// ErrMinimumStay indicates the requested stay is shorter than the property allows.
	ErrMinimumStay = errors.New("minimum stay not met")

	// Comparison Errors.

	// ErrTooFewTargets indicates fewer than MinCompare properties were given.
	ErrTooFewTargets = errors.New("too few properties to compare")

	// ErrTooManyTargets indicates more than MaxCompare properties were given.
	ErrTooManyTargets = errors.New("too many properties to compare")

	// ErrUnknownProperty indicates one or more comparison ids are not in the catalog.
	ErrUnknownProperty = errors.New("unknown property")
)

// MinimumStayError reports the minimum a property requires alongside
// what was requested. It matches ErrMinimumStay with errors.Is.
type MinimumStayError struct {
	PropertyID string
	Required   int
	Requested  int
}

func (e *MinimumStayError) Error() string {
	return fmt.Sprintf("%s: property %s requires %d nights, requested %d",
		ErrMinimumStay, e.PropertyID, e.Required, e.Requested)
}

// Unwrap returns ErrMinimumStay.
func (e *MinimumStayError) Unwrap() error {
	return ErrMinimumStay
}

// UnknownPropertyError lists every id that failed catalog lookup.
// It matches ErrUnknownProperty with errors.Is.
type UnknownPropertyError struct {
	IDs []string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownProperty, strings.Join(e.IDs, ", "))
}

// Unwrap returns ErrUnknownProperty.
func (e *UnknownPropertyError) Unwrap() error {
	return ErrUnknownProperty
}
