package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkovtun/go-assistant/internal/engine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestNextOccurrence verifies the candidate-year logic: this year when the
// birthday has not passed, next year otherwise, today counting as upcoming.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": June 15th, 2025.
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birth    time.Time
		expected time.Time
	}{
		{"Passed this year", date(1990, 1, 1), date(2026, 1, 1)},
		{"Still ahead this year", date(1990, 12, 31), date(2025, 12, 31)},
		{"Exactly today", date(1990, 6, 15), date(2025, 6, 15)},
		{"Leapling in non-leap year normalizes to March 1", date(2000, 2, 29), date(2026, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.NextOccurrence(today, tt.birth))
		})
	}
}

func TestNextOccurrence_LeapYearContext(t *testing.T) {
	// In a leap year the leapling's day is preserved as Feb 29.
	today := date(2024, 1, 1)
	next := engine.NextOccurrence(today, date(2000, 2, 29))
	assert.Equal(t, date(2024, 2, 29), next)
}

// TestShiftToBusinessDay pins the weekend rule: Saturday advances two days,
// Sunday one, weekdays are untouched.
func TestShiftToBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"Saturday to Monday", date(2025, 6, 14), date(2025, 6, 16)},
		{"Sunday to Monday", date(2025, 6, 15), date(2025, 6, 16)},
		{"Monday unchanged", date(2025, 6, 16), date(2025, 6, 16)},
		{"Wednesday unchanged", date(2025, 6, 11), date(2025, 6, 11)},
		{"Friday unchanged", date(2025, 6, 13), date(2025, 6, 13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.ShiftToBusinessDay(tt.input))
		})
	}
}

func TestUpcoming_WindowBoundaries(t *testing.T) {
	// Reference "today": Wednesday, June 11th, 2025. Window is [11..17].
	today := date(2025, 6, 11)

	tests := []struct {
		name     string
		birth    time.Time
		included bool
	}{
		{"Delta zero included", date(1990, 6, 11), true},
		{"Delta six included", date(1990, 6, 17), true},
		{"Delta seven excluded", date(1990, 6, 18), false},
		{"Passed yesterday excluded", date(1990, 6, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := engine.Upcoming(today, []engine.BirthdayEntry{
				{Name: "Test", DateOfBirth: tt.birth},
			})
			if tt.included {
				require.Len(t, groups, 1)
				assert.Equal(t, []string{"Test"}, groups[0].Names)
			} else {
				assert.Empty(t, groups)
			}
		})
	}
}

func TestUpcoming_GroupingAndOrdering(t *testing.T) {
	// Wednesday, June 11th, 2025. Saturday the 14th and Sunday the 15th both
	// shift to Monday the 16th, merging into one group with sorted names.
	today := date(2025, 6, 11)

	entries := []engine.BirthdayEntry{
		{Name: "Zoe", DateOfBirth: date(1988, 6, 14)},   // Saturday -> Mon 16th
		{Name: "Alice", DateOfBirth: date(1992, 6, 15)}, // Sunday -> Mon 16th
		{Name: "Bob", DateOfBirth: date(1995, 6, 12)},   // Thursday, unshifted
	}

	groups := engine.Upcoming(today, entries)
	require.Len(t, groups, 2)

	assert.Equal(t, date(2025, 6, 12), groups[0].Date, "dates emitted ascending")
	assert.Equal(t, []string{"Bob"}, groups[0].Names)

	assert.Equal(t, date(2025, 6, 16), groups[1].Date)
	assert.Equal(t, []string{"Alice", "Zoe"}, groups[1].Names, "names sorted within a date")
}

func TestUpcoming_Empty(t *testing.T) {
	today := date(2025, 6, 11)

	assert.Empty(t, engine.Upcoming(today, nil))
	assert.Empty(t, engine.Upcoming(today, []engine.BirthdayEntry{
		{Name: "Far Away", DateOfBirth: date(1990, 12, 25)},
	}))
}
