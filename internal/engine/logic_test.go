package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNextOccurrence verifies the core temporal logic of the application:
// current-year projection, year rollover, leap day collapse, and the
// inclusive 7-day proximity window.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": Monday, June 2nd, 2025.
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		birthday   time.Time
		wantDate   time.Time
		wantInside bool
		desc       string
	}{
		{
			name:       "Today",
			birthday:   time.Date(1990, 6, 2, 0, 0, 0, 0, time.UTC),
			wantDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantInside: true,
			desc:       "days_diff = 0 is inside the window",
		},
		{
			name:       "Exactly seven days out",
			birthday:   time.Date(1990, 6, 9, 0, 0, 0, 0, time.UTC),
			wantDate:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			wantInside: true,
			desc:       "days_diff = 7 is the inclusive upper boundary",
		},
		{
			name:       "Eight days out",
			birthday:   time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC),
			wantInside: false,
			desc:       "days_diff = 8 is outside the window",
		},
		{
			name:       "Already passed this year",
			birthday:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			wantInside: false,
			desc:       "Rolls to 2026-01-01, far outside the window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inside := nextOccurrence(today, tt.birthday)
			assert.Equal(t, tt.wantInside, inside, tt.desc)
			if tt.wantInside {
				assert.Equal(t, tt.wantDate, got, tt.desc)
			}
		})
	}
}

// TestNextOccurrence_YearRollover checks the window spanning a year boundary.
func TestNextOccurrence_YearRollover(t *testing.T) {
	today := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	birthday := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)

	got, inside := nextOccurrence(today, birthday)
	assert.True(t, inside, "Jan 2 is 3 days after Dec 30")
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestOccurrenceInYear_LeapDay(t *testing.T) {
	leapling := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	// Leap year keeps Feb 29; non-leap year collapses to Feb 28, not Mar 1.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), occurrenceInYear(2024, leapling))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), occurrenceInYear(2025, leapling))

	// Century rule: 2100 is not a leap year, 2000 is.
	assert.Equal(t, time.Date(2100, 2, 28, 0, 0, 0, 0, time.UTC), occurrenceInYear(2100, leapling))
	assert.Equal(t, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), occurrenceInYear(2000, leapling))
}

func TestShiftFromWeekend(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, shiftFromWeekend(saturday), "Saturday shifts +2 to Monday")
	assert.Equal(t, monday, shiftFromWeekend(sunday), "Sunday shifts +1 to Monday")
	assert.Equal(t, monday, shiftFromWeekend(monday), "Weekdays are untouched")
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2024))
	assert.False(t, isLeapYear(2025))
	assert.False(t, isLeapYear(2100), "Century years are not leap unless divisible by 400")
	assert.True(t, isLeapYear(2000))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 6, 2, 23, 59, 59, 0, time.FixedZone("X", 3*3600))
	got := dateOnly(in)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), got)
}
