package scheduler

import (
	"context"
	"log"
	"time"

	"estate-backend/internal/config"
	"estate-backend/internal/jobs"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly housekeeping jobs. Cron specs come from config
// so deployments can shift them around maintenance windows.
type Scheduler struct {
	cron *cron.Cron
	cfg  *config.Config

	overdueJob *jobs.MarkOverduePaymentsJob
	renewalJob *jobs.RenewalWindowScanJob
}

func New(cfg *config.Config, overdueJob *jobs.MarkOverduePaymentsJob, renewalJob *jobs.RenewalWindowScanJob) *Scheduler {
	return &Scheduler{
		// Six-field specs with seconds
		cron:       cron.New(cron.WithSeconds()),
		cfg:        cfg,
		overdueJob: overdueJob,
		renewalJob: renewalJob,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Scheduler.MarkOverduePayments, func() {
		s.runWithRecovery("mark_overdue_payments", s.overdueJob.Run)
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.cfg.Scheduler.RenewalWindowScan, func() {
		s.runWithRecovery("renewal_window_scan", s.renewalJob.Run)
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[Scheduler] Started with %d jobs", len(s.cron.Entries()))
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		log.Printf("[Scheduler] Timed out waiting for running jobs")
	}
}

// runWithRecovery keeps a panicking job from taking the scheduler down
func (s *Scheduler) runWithRecovery(name string, job func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Scheduler] Job %s panicked: %v", name, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		log.Printf("[Scheduler] Job %s failed after %s: %v", name, time.Since(start), err)
		return
	}
	log.Printf("[Scheduler] Job %s completed in %s", name, time.Since(start))
}
