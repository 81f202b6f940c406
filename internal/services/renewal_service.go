package services

import (
	"context"
	"fmt"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/rules"
	"estate-backend/internal/timeutil"
)

type RenewalService struct {
	renewalRepo  *repositories.RenewalRequestRepository
	rentalRepo   *repositories.RentalRepository
	settingsRepo *repositories.SystemSettingRepository
}

func NewRenewalService(
	renewalRepo *repositories.RenewalRequestRepository,
	rentalRepo *repositories.RentalRepository,
	settingsRepo *repositories.SystemSettingRepository,
) *RenewalService {
	return &RenewalService{
		renewalRepo:  renewalRepo,
		rentalRepo:   rentalRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *RenewalService) windowDays(ctx context.Context) int {
	return s.settingsRepo.GetInt(ctx, "renewal_window_days", rules.DefaultRenewalWindowDays)
}

// Eligibility tells the tenant dashboard whether the renewal button is live
// and why not when it isn't
func (s *RenewalService) Eligibility(ctx context.Context, rentalID, tenantID int) (*models.RenewalEligibility, error) {
	rental, err := s.rentalRepo.Get(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}
	if rental.TenantID != tenantID {
		return nil, fmt.Errorf("rental does not belong to tenant")
	}

	hasPending, err := s.renewalRepo.HasPending(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	today := timeutil.Today()
	ok, reason := rules.CanRequestRenewal(rental, hasPending, s.windowDays(ctx), today)
	return &models.RenewalEligibility{
		CanRequest:          ok,
		Reason:              reason,
		DaysUntilExpiration: rules.DaysUntilExpiration(rental.EndDate, today),
	}, nil
}

// Create files a renewal request from the tenant portal. All eligibility
// rules are re-checked here; the dashboard hint is advisory only.
func (s *RenewalService) Create(ctx context.Context, tenantID int, req *models.CreateRenewalRequest) (*models.RenewalRequest, error) {
	if req.Months <= 0 {
		return nil, fmt.Errorf("months must be positive")
	}

	rental, err := s.rentalRepo.Get(ctx, req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}
	if rental.TenantID != tenantID {
		return nil, fmt.Errorf("rental does not belong to tenant")
	}

	hasPending, err := s.renewalRepo.HasPending(ctx, req.RentalID)
	if err != nil {
		return nil, err
	}
	if ok, reason := rules.CanRequestRenewal(rental, hasPending, s.windowDays(ctx), timeutil.Today()); !ok {
		return nil, fmt.Errorf("%s", reason)
	}

	request := &models.RenewalRequest{
		RentalID:       req.RentalID,
		TenantID:       tenantID,
		Months:         req.Months,
		ProposedAmount: req.ProposedAmount,
	}
	if err := s.renewalRepo.Create(ctx, request); err != nil {
		// Unique index lost the race to a concurrent request
		return nil, fmt.Errorf("a pending request already exists for this rental")
	}
	return s.renewalRepo.Get(ctx, request.ID)
}

// Approve grants the renewal and extends the contract end date by the
// requested number of months
func (s *RenewalService) Approve(ctx context.Context, id int, req *models.DecideRenewalRequest, decidedBy int) (*models.RenewalRequest, error) {
	request, err := s.renewalRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("renewal request not found")
	}
	if request.Status.IsTerminal() {
		return nil, fmt.Errorf("request already %s", request.Status)
	}

	rental, err := s.rentalRepo.Get(ctx, request.RentalID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}
	if rental.Status.IsOverride() {
		return nil, fmt.Errorf("cannot renew a %s rental", rental.Status)
	}

	changed, err := s.renewalRepo.Decide(ctx, id, models.RenewalApproved, req.Response, decidedBy)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, fmt.Errorf("request already decided")
	}

	newEnd := rental.EndDate.AddDate(0, request.Months, 0)
	if err := s.rentalRepo.ExtendEndDate(ctx, rental.ID, newEnd); err != nil {
		return nil, fmt.Errorf("approved but failed to extend rental: %w", err)
	}
	if request.ProposedAmount > 0 {
		rental.MonthlyAmount = request.ProposedAmount
		rental.EndDate = newEnd
		_ = s.rentalRepo.Update(ctx, rental)
	}

	return s.renewalRepo.Get(ctx, id)
}

// Reject turns down a pending request
func (s *RenewalService) Reject(ctx context.Context, id int, req *models.DecideRenewalRequest, decidedBy int) (*models.RenewalRequest, error) {
	changed, err := s.renewalRepo.Decide(ctx, id, models.RenewalRejected, req.Response, decidedBy)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, fmt.Errorf("request not found or already decided")
	}
	return s.renewalRepo.Get(ctx, id)
}

// Cancel lets the requesting tenant withdraw their own pending request
func (s *RenewalService) Cancel(ctx context.Context, id, tenantID int) error {
	changed, err := s.renewalRepo.Cancel(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if changed == 0 {
		return fmt.Errorf("request not found or already decided")
	}
	return nil
}

func (s *RenewalService) List(ctx context.Context) ([]*models.RenewalRequest, error) {
	return s.renewalRepo.List(ctx)
}

func (s *RenewalService) ListPending(ctx context.Context) ([]*models.RenewalRequest, error) {
	return s.renewalRepo.ListPending(ctx)
}

func (s *RenewalService) ListByTenant(ctx context.Context, tenantID int) ([]*models.RenewalRequest, error) {
	return s.renewalRepo.ListByTenant(ctx, tenantID)
}
