package rules

import (
	"testing"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := timeutil.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveStatus_OverrideWins(t *testing.T) {
	start := date("2024-01-01")
	end := date("2024-01-31")

	// Override must win regardless of where today falls
	for _, today := range []time.Time{date("2023-12-01"), date("2024-01-15"), date("2024-06-01")} {
		assert.Equal(t, models.StatusTerminated, ResolveStatus(models.StatusTerminated, start, end, today))
		assert.Equal(t, models.StatusCancelled, ResolveStatus(models.StatusCancelled, start, end, today))
	}
}

func TestResolveStatus_DerivedFromDates(t *testing.T) {
	start := date("2024-01-01")
	end := date("2024-06-30")

	tests := []struct {
		name  string
		today time.Time
		want  models.RentalStatus
	}{
		{"before start", date("2023-12-31"), models.StatusPending},
		{"well inside range", date("2024-02-15"), models.StatusActive},
		{"31 days before end", date("2024-05-30"), models.StatusActive},
		{"exactly 30 days before end", date("2024-05-31"), models.StatusNearExpiration},
		{"day before end", date("2024-06-29"), models.StatusNearExpiration},
		{"day after end", date("2024-07-01"), models.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(models.StatusActive, start, end, tt.today))
		})
	}
}

func TestResolveStatus_InclusiveBoundaries(t *testing.T) {
	start := date("2024-01-01")
	end := date("2024-06-30")

	// On the start date the rental is already in range, on the end date still
	// in range (near_expiration since <=30 days remain)
	assert.Equal(t, models.StatusActive, ResolveStatus(models.StatusActive, start, end, start))
	assert.Equal(t, models.StatusNearExpiration, ResolveStatus(models.StatusActive, start, end, end))
}

func TestResolveStatus_ShortContract(t *testing.T) {
	start := date("2024-01-01")
	end := date("2024-01-31")

	// Mid-January on a one-month contract: 16 days left, near_expiration
	assert.Equal(t, models.StatusNearExpiration, ResolveStatus(models.StatusActive, start, end, date("2024-01-15")))
	// 11 days remaining
	assert.Equal(t, models.StatusNearExpiration, ResolveStatus(models.StatusActive, start, end, date("2024-01-20")))

	// A longer contract is plain active mid-way
	assert.Equal(t, models.StatusActive, ResolveStatus(models.StatusActive, start, date("2024-12-31"), date("2024-01-15")))
}

func TestResolveStatus_SingleDayContract(t *testing.T) {
	day := date("2024-03-15")
	assert.Equal(t, models.StatusPending, ResolveStatus(models.StatusActive, day, day, date("2024-03-14")))
	assert.Equal(t, models.StatusNearExpiration, ResolveStatus(models.StatusActive, day, day, day))
	assert.Equal(t, models.StatusExpired, ResolveStatus(models.StatusActive, day, day, date("2024-03-16")))
}

func TestDaysUntilExpiration(t *testing.T) {
	assert.Equal(t, 16, DaysUntilExpiration(date("2024-01-31"), date("2024-01-15")))
	assert.Equal(t, 0, DaysUntilExpiration(date("2024-01-31"), date("2024-01-31")))
	assert.Equal(t, -5, DaysUntilExpiration(date("2024-01-31"), date("2024-02-05")))
}

func TestDaysUntilExpiration_IgnoresTimeOfDay(t *testing.T) {
	end := date("2024-01-31")
	lateToday := date("2024-01-30").Add(23 * time.Hour)
	assert.Equal(t, 1, DaysUntilExpiration(end, lateToday))
}
