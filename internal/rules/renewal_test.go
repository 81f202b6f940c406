package rules

import (
	"testing"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func rentalEnding(end string) *models.Rental {
	return &models.Rental{
		StartDate: date("2024-01-01"),
		EndDate:   date(end),
		Status:    models.StatusActive,
	}
}

func TestCanRequestRenewal_PendingBlocksRegardlessOfDates(t *testing.T) {
	r := rentalEnding("2024-06-30")

	for _, today := range []string{"2024-05-15", "2024-06-29", "2024-02-01"} {
		can, reason := CanRequestRenewal(r, true, DefaultRenewalWindowDays, date(today))
		assert.False(t, can)
		assert.Equal(t, ReasonPendingExists, reason)
	}
}

func TestCanRequestRenewal_StatusGate(t *testing.T) {
	r := rentalEnding("2024-06-30")

	// pending contract (today before start)
	can, reason := CanRequestRenewal(r, false, DefaultRenewalWindowDays, date("2023-12-01"))
	assert.False(t, can)
	assert.Equal(t, ReasonNotActive, reason)

	// expired contract
	can, reason = CanRequestRenewal(r, false, DefaultRenewalWindowDays, date("2024-08-01"))
	assert.False(t, can)
	assert.Equal(t, ReasonNotActive, reason)

	// manual override
	terminated := rentalEnding("2024-06-30")
	terminated.Status = models.StatusTerminated
	can, reason = CanRequestRenewal(terminated, false, DefaultRenewalWindowDays, date("2024-06-01"))
	assert.False(t, can)
	assert.Equal(t, ReasonNotActive, reason)
}

func TestCanRequestRenewal_WindowGate(t *testing.T) {
	r := rentalEnding("2024-12-31")

	// 90 days out with a 60-day window: too early
	can, reason := CanRequestRenewal(r, false, 60, date("2024-10-02"))
	assert.False(t, can)
	assert.Equal(t, ReasonTooEarly, reason)

	// exactly on the window boundary: allowed
	can, reason = CanRequestRenewal(r, false, 60, date("2024-11-01"))
	assert.True(t, can)
	assert.Empty(t, reason)
}

func TestCanRequestRenewal_Eligible(t *testing.T) {
	r := rentalEnding("2024-06-30")

	can, reason := CanRequestRenewal(r, false, DefaultRenewalWindowDays, date("2024-06-01"))
	assert.True(t, can)
	assert.Empty(t, reason)

	// still eligible inside the near_expiration window
	can, _ = CanRequestRenewal(r, false, DefaultRenewalWindowDays, date("2024-06-29"))
	assert.True(t, can)
}
