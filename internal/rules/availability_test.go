package rules

import (
	"testing"

	"estate-backend/internal/models"
	"estate-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
)

func booking(id, propertyID int, start, end string, status models.RentalStatus) *models.Rental {
	return &models.Rental{
		ID:         id,
		PropertyID: propertyID,
		StartDate:  date(start),
		EndDate:    date(end),
		Status:     status,
	}
}

func TestFindConflicts_Overlap(t *testing.T) {
	existing := []*models.Rental{
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive),
		booking(2, 10, "2024-04-01", "2024-04-15", models.StatusActive),
	}

	conflicts := FindConflicts(date("2024-03-05"), date("2024-03-20"), 10, existing, 0)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, 1, conflicts[0].ID)
}

func TestFindConflicts_InclusiveBoundary(t *testing.T) {
	// A candidate starting the day an existing booking ends still conflicts:
	// same-day turnover is rejected
	existing := []*models.Rental{
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive),
	}

	conflicts := FindConflicts(date("2024-03-10"), date("2024-03-20"), 10, existing, 0)
	assert.Len(t, conflicts, 1)

	next := NextAvailableDate(conflicts[0])
	assert.Equal(t, "2024-03-11", timeutil.FormatDate(next))
}

func TestFindConflicts_Symmetric(t *testing.T) {
	a := booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive)
	b := booking(2, 10, "2024-03-08", "2024-03-20", models.StatusActive)

	// a vs b and b vs a must agree
	assert.Len(t, FindConflicts(a.StartDate, a.EndDate, 10, []*models.Rental{b}, 0), 1)
	assert.Len(t, FindConflicts(b.StartDate, b.EndDate, 10, []*models.Rental{a}, 0), 1)
}

func TestFindConflicts_SkipsCancelledAndTerminated(t *testing.T) {
	existing := []*models.Rental{
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusCancelled),
		booking(2, 10, "2024-03-01", "2024-03-10", models.StatusTerminated),
	}

	conflicts := FindConflicts(date("2024-03-05"), date("2024-03-08"), 10, existing, 0)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_FiltersPropertyAndExcludeID(t *testing.T) {
	existing := []*models.Rental{
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive),
		booking(2, 99, "2024-03-01", "2024-03-10", models.StatusActive), // other property
	}

	// Editing booking 1 must not conflict with itself
	assert.Empty(t, FindConflicts(date("2024-03-01"), date("2024-03-10"), 10, existing, 1))
	// Without the exclusion it does
	assert.Len(t, FindConflicts(date("2024-03-01"), date("2024-03-10"), 10, existing, 0), 1)
}

func TestFindConflicts_ReturnsAllInOriginalOrder(t *testing.T) {
	existing := []*models.Rental{
		booking(3, 10, "2024-03-15", "2024-03-25", models.StatusActive),
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive),
		booking(2, 10, "2024-03-11", "2024-03-14", models.StatusActive),
	}

	conflicts := FindConflicts(date("2024-03-01"), date("2024-03-31"), 10, existing, 0)
	assert.Len(t, conflicts, 3)
	assert.Equal(t, 3, conflicts[0].ID)
	assert.Equal(t, 1, conflicts[1].ID)
	assert.Equal(t, 2, conflicts[2].ID)
}

func TestFindConflicts_DisjointRanges(t *testing.T) {
	existing := []*models.Rental{
		booking(1, 10, "2024-03-01", "2024-03-10", models.StatusActive),
	}

	assert.Empty(t, FindConflicts(date("2024-03-11"), date("2024-03-20"), 10, existing, 0))
	assert.Empty(t, FindConflicts(date("2024-02-01"), date("2024-02-29"), 10, existing, 0))
}
