package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, Agency, d.Location())
}

func TestParseDate_Malformed(t *testing.T) {
	for _, input := range []string{"", "15-03-2024", "2024/03/15", "2024-13-40", "yesterday"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", FormatDate(d))
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 34, 56, 789, Agency)
	start := StartOfDay(noon)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 15, start.Day())
}

func TestDaysBetween(t *testing.T) {
	a := mustDate(t, "2024-01-01")
	b := mustDate(t, "2024-01-31")

	assert.Equal(t, 30, DaysBetween(a, b))
	assert.Equal(t, -30, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetween_AcrossDSTTransition(t *testing.T) {
	// The spring-forward Sunday is a 23-hour day; the count must still be
	// whole calendar days
	before := mustDate(t, "2024-03-30")
	after := mustDate(t, "2024-04-01")
	assert.Equal(t, 2, DaysBetween(before, after))

	// Fall back, a 25-hour day
	before = mustDate(t, "2024-10-26")
	after = mustDate(t, "2024-10-28")
	assert.Equal(t, 2, DaysBetween(before, after))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 5, 1, 23, 59, 0, 0, Agency)
	early := time.Date(2024, 5, 2, 0, 1, 0, 0, Agency)
	assert.Equal(t, 1, DaysBetween(late, early))
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}
