package jobs

import (
	"context"
	"log"

	"estate-backend/internal/metrics"
	"estate-backend/internal/services"
	"estate-backend/internal/timeutil"
)

// MarkOverduePaymentsJob flips pending payments whose due date has passed to
// overdue. Runs nightly shortly after midnight.
type MarkOverduePaymentsJob struct {
	paymentService *services.PaymentService
}

func NewMarkOverduePaymentsJob(paymentService *services.PaymentService) *MarkOverduePaymentsJob {
	return &MarkOverduePaymentsJob{paymentService: paymentService}
}

func (j *MarkOverduePaymentsJob) Run(ctx context.Context) error {
	changed, err := j.paymentService.MarkOverdue(ctx, timeutil.Today())
	if err != nil {
		return err
	}

	if changed > 0 {
		metrics.PaymentsMarkedOverdue.Add(float64(changed))
		log.Printf("[Jobs] Marked %d payments overdue", changed)
	}
	return nil
}
