package rules

import (
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/timeutil"
)

// FindConflicts returns every booking in existing that overlaps the candidate
// date range for the given property, preserving input order.
//
// Bookings for other properties, the booking being edited (excludeID, 0 to
// skip none) and bookings whose stored status is cancelled or terminated are
// ignored. Two ranges conflict when they are not disjoint:
//
//	candStart <= existing.End && candEnd >= existing.Start
//
// Boundaries are inclusive, so a booking ending the day another starts is a
// conflict — same-day turnover is not allowed.
//
// Detection is advisory only: it checks a snapshot the caller fetched moments
// earlier and cannot prevent two staff members racing each other. True
// prevention is the database exclusion constraint on the rentals table.
func FindConflicts(candStart, candEnd time.Time, propertyID int, existing []*models.Rental, excludeID int) []*models.Rental {
	start := timeutil.StartOfDay(candStart)
	end := timeutil.StartOfDay(candEnd)

	var conflicts []*models.Rental
	for _, b := range existing {
		if b.PropertyID != propertyID {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Status.IsOverride() {
			continue
		}
		bStart := timeutil.StartOfDay(b.StartDate)
		bEnd := timeutil.StartOfDay(b.EndDate)
		if !start.After(bEnd) && !end.Before(bStart) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// NextAvailableDate suggests the first day after a conflicting booking ends.
// Callers typically pass the first conflict returned by FindConflicts.
func NextAvailableDate(conflict *models.Rental) time.Time {
	return timeutil.StartOfDay(conflict.EndDate).AddDate(0, 0, 1)
}
