// Package rules holds the rental rule engine: status derivation, booking
// conflict detection, commission splits and renewal eligibility. Everything
// here is a pure function over values supplied by the caller — no storage, no
// clocks, no side effects. Callers pass "today" explicitly so results are
// deterministic and testable.
package rules

import (
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/timeutil"
)

// NearExpirationDays is the window before the end date in which an active
// rental is reported as near_expiration.
const NearExpirationDays = 30

// ResolveStatus derives a rental's effective lifecycle status from its stored
// status and contract dates.
//
// A manual override (terminated/cancelled) always wins over the derived
// value. Otherwise the status is computed from today's position relative to
// [start, end], with both boundaries inclusive: a rental is in range on its
// start date and still in range on its end date.
//
// Callers must pre-validate start <= end; the function does not guard it.
func ResolveStatus(stored models.RentalStatus, start, end, today time.Time) models.RentalStatus {
	if stored.IsOverride() {
		return stored
	}

	day := timeutil.StartOfDay(today)
	startDay := timeutil.StartOfDay(start)
	endDay := timeutil.StartOfDay(end)

	if day.Before(startDay) {
		return models.StatusPending
	}
	if day.After(endDay) {
		return models.StatusExpired
	}
	if timeutil.DaysBetween(day, endDay) <= NearExpirationDays {
		return models.StatusNearExpiration
	}
	return models.StatusActive
}

// DaysUntilExpiration returns the calendar days from today until the end
// date. Negative when the rental has already expired.
func DaysUntilExpiration(end, today time.Time) int {
	return timeutil.DaysBetween(today, end)
}
