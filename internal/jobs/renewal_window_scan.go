package jobs

import (
	"context"
	"log"

	"estate-backend/internal/metrics"
	"estate-backend/internal/repositories"
	"estate-backend/internal/rules"
	"estate-backend/internal/timeutil"
)

// RenewalWindowScanJob counts active contracts inside the renewal window and
// publishes the figure as a gauge so dashboards can surface upcoming churn.
type RenewalWindowScanJob struct {
	rentalRepo   *repositories.RentalRepository
	settingsRepo *repositories.SystemSettingRepository
}

func NewRenewalWindowScanJob(rentalRepo *repositories.RentalRepository, settingsRepo *repositories.SystemSettingRepository) *RenewalWindowScanJob {
	return &RenewalWindowScanJob{rentalRepo: rentalRepo, settingsRepo: settingsRepo}
}

func (j *RenewalWindowScanJob) Run(ctx context.Context) error {
	today := timeutil.Today()
	windowDays := j.settingsRepo.GetInt(ctx, "renewal_window_days", rules.DefaultRenewalWindowDays)

	rentals, err := j.rentalRepo.ListEndingBetween(ctx, today, today.AddDate(0, 0, windowDays))
	if err != nil {
		return err
	}

	// Override statuses keep rentals out of the renewal pipeline
	count := 0
	for _, r := range rentals {
		if !r.Status.IsOverride() {
			count++
		}
	}

	metrics.RentalsNearExpiration.Set(float64(count))
	log.Printf("[Jobs] %d rentals inside the %d-day renewal window", count, windowDays)
	return nil
}
