package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "iso date",
			input:    "2025-01-10",
			expected: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2025-12-24 ",
			expected: time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 truncated to day",
			input:    "2025-03-02T18:30:00-08:00",
			expected: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "next friday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := NewDateRange("2025-01-10", "2025-01-13")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
		assert.Equal(t, "2025-01-10 to 2025-01-13", r.String())
	})

	t.Run("same day is invalid range", func(t *testing.T) {
		_, err := NewDateRange("2025-01-10", "2025-01-10")
		assert.True(t, errors.Is(err, ErrInvalidRange))
	})

	t.Run("reversed is invalid range", func(t *testing.T) {
		_, err := NewDateRange("2025-01-13", "2025-01-10")
		assert.True(t, errors.Is(err, ErrInvalidRange))
	})

	t.Run("bad check-in", func(t *testing.T) {
		_, err := NewDateRange("soon", "2025-01-10")
		assert.True(t, errors.Is(err, ErrInvalidDate))
	})

	t.Run("bad check-out", func(t *testing.T) {
		_, err := NewDateRange("2025-01-10", "later")
		assert.True(t, errors.Is(err, ErrInvalidDate))
	})
}

func TestDateRange_NightsAcrossMonths(t *testing.T) {
	r, err := NewDateRange("2025-02-26", "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Nights())
}

func TestDateRange_Contains(t *testing.T) {
	r, err := NewDateRange("2025-01-10", "2025-01-13")
	require.NoError(t, err)

	day := func(d int) time.Time { return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC) }

	assert.False(t, r.Contains(day(9)))
	assert.True(t, r.Contains(day(10)), "check-in day is occupied")
	assert.True(t, r.Contains(day(12)))
	assert.False(t, r.Contains(day(13)), "check-out day is free")
}
