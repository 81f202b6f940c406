package timeutil

import (
	"time"
)

// Agency is the agency's business timezone. All contract dates, due dates and
// status derivation use this zone so that "today" matches the office calendar.
var Agency *time.Location

func init() {
	zone := "Europe/Madrid"
	var err error
	Agency, err = time.LoadLocation(zone)
	if err != nil {
		// Fallback: fixed CET if the tz database is unavailable
		Agency = time.FixedZone("CET", 60*60)
	}
}

// Now returns the current time in the agency timezone
func Now() time.Time {
	return time.Now().In(Agency)
}

// Today returns the current date truncated to midnight in the agency timezone
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay returns the start of day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Agency)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Agency)
}

// EndOfDay returns the end of day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	lt := t.In(Agency)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 999999999, Agency)
}

// ParseDate parses a YYYY-MM-DD string into a date at midnight agency time.
// Malformed input returns the parse error so callers can fail fast instead of
// comparing zero times.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, Agency)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD in the agency timezone
func FormatDate(t time.Time) string {
	return t.In(Agency).Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b (negative when b
// is before a). Both are truncated to midnight first so times of day never
// skew the count.
func DaysBetween(a, b time.Time) int {
	from := a.In(Agency)
	to := b.In(Agency)
	// Re-anchor both dates in UTC so DST transitions (23h/25h days) never
	// skew the delta.
	fu := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	tu := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(tu.Sub(fu).Hours() / 24)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
