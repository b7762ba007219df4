package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidDate", ErrInvalidDate},
		{"ErrInvalidRange", ErrInvalidRange},
		{"ErrMinimumStay", ErrMinimumStay},
		{"ErrTooFewTargets", ErrTooFewTargets},
		{"ErrTooManyTargets", ErrTooManyTargets},
		{"ErrUnknownProperty", ErrUnknownProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidDate))
}

func TestMinimumStayError(t *testing.T) {
	err := &MinimumStayError{PropertyID: "wv-1", Required: 3, Requested: 1}

	assert.True(t, errors.Is(err, ErrMinimumStay))
	assert.Contains(t, err.Error(), "requires 3 nights")
	assert.Contains(t, err.Error(), "requested 1")

	wrapped := fmt.Errorf("checking availability: %w", err)
	var target *MinimumStayError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 3, target.Required)
}

func TestUnknownPropertyError(t *testing.T) {
	err := &UnknownPropertyError{IDs: []string{"nope-1", "nope-2"}}

	assert.True(t, errors.Is(err, ErrUnknownProperty))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "unknown property: nope-1, nope-2", err.Error())
}
