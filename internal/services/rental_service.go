package services

import (
	"context"
	"fmt"
	"time"

	"estate-backend/internal/metrics"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/rules"
	"estate-backend/internal/timeutil"
)

// ConflictError carries the 409 payload when requested dates overlap an
// existing booking
type ConflictError struct {
	Response *models.ConflictResponse
}

func (e *ConflictError) Error() string {
	return e.Response.Message
}

type RentalService struct {
	rentalRepo   *repositories.RentalRepository
	propertyRepo *repositories.PropertyRepository
	tenantRepo   *repositories.TenantRepository
}

func NewRentalService(
	rentalRepo *repositories.RentalRepository,
	propertyRepo *repositories.PropertyRepository,
	tenantRepo *repositories.TenantRepository,
) *RentalService {
	return &RentalService{
		rentalRepo:   rentalRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
	}
}

// Create books a property for a tenant after checking the dates don't overlap
// any existing contract. The database exclusion constraint backs this check up
// against concurrent bookings.
func (s *RentalService) Create(ctx context.Context, req *models.CreateRentalRequest, createdBy int) (*models.Rental, error) {
	start, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}
	if req.MonthlyAmount <= 0 {
		return nil, fmt.Errorf("monthly_amount must be positive")
	}

	if _, err := s.propertyRepo.Get(ctx, req.PropertyID); err != nil {
		return nil, fmt.Errorf("property not found")
	}
	if _, err := s.tenantRepo.Get(ctx, req.TenantID); err != nil {
		return nil, fmt.Errorf("tenant not found")
	}

	if err := s.checkAvailability(ctx, req.PropertyID, start, end, 0); err != nil {
		return nil, err
	}

	rentalType := models.RentalType(req.RentalType)
	if rentalType == "" {
		rentalType = models.RentalLongTerm
	}
	maxOccupants := req.MaxOccupants
	if maxOccupants <= 0 {
		maxOccupants = 1
	}

	rental := &models.Rental{
		PropertyID:       req.PropertyID,
		TenantID:         req.TenantID,
		StartDate:        start,
		EndDate:          end,
		MonthlyAmount:    req.MonthlyAmount,
		Status:           models.StatusActive,
		RentalType:       rentalType,
		IncludedServices: req.IncludedServices,
		MaxOccupants:     maxOccupants,
		PetsAllowed:      req.PetsAllowed,
		SmokingAllowed:   req.SmokingAllowed,
		CreatedByUserID:  createdBy,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Exclusion constraint lost the race to a concurrent booking
		return nil, fmt.Errorf("dates no longer available: %w", err)
	}

	// Listing follows the contract
	_ = s.propertyRepo.UpdateStatus(ctx, req.PropertyID, models.PropertyRented)

	s.fillEffectiveStatus(rental)
	return rental, nil
}

// checkAvailability returns a *ConflictError listing every overlapping
// contract, or nil when the window is free
func (s *RentalService) checkAvailability(ctx context.Context, propertyID int, start, end time.Time, excludeID int) error {
	existing, err := s.rentalRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}

	conflicts := rules.FindConflicts(start, end, propertyID, existing, excludeID)
	if len(conflicts) == 0 {
		return nil
	}

	metrics.BookingConflictsTotal.Inc()

	// Suggest the day after the conflicting booking that ends last
	latest := conflicts[0]
	for _, c := range conflicts[1:] {
		if c.EndDate.After(latest.EndDate) {
			latest = c
		}
	}
	for _, c := range conflicts {
		s.fillEffectiveStatus(c)
	}

	return &ConflictError{Response: &models.ConflictResponse{
		Message:       "Requested dates overlap an existing booking",
		Conflicts:     conflicts,
		NextAvailable: timeutil.FormatDate(rules.NextAvailableDate(latest)),
	}}
}

func (s *RentalService) Get(ctx context.Context, id int) (*models.Rental, error) {
	rental, err := s.rentalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.fillEffectiveStatus(rental)
	return rental, nil
}

func (s *RentalService) List(ctx context.Context) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rentals {
		s.fillEffectiveStatus(r)
	}
	return rentals, nil
}

func (s *RentalService) ListByProperty(ctx context.Context, propertyID int) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	for _, r := range rentals {
		s.fillEffectiveStatus(r)
	}
	return rentals, nil
}

func (s *RentalService) ListByTenant(ctx context.Context, tenantID int) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, r := range rentals {
		s.fillEffectiveStatus(r)
	}
	return rentals, nil
}

// Update changes contract terms, re-running the availability check when the
// dates move. The rental's own booking is excluded from the check.
func (s *RentalService) Update(ctx context.Context, id int, req *models.UpdateRentalRequest) (*models.Rental, error) {
	rental, err := s.rentalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status.IsOverride() {
		return nil, fmt.Errorf("cannot update a %s rental", rental.Status)
	}

	start, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}

	if err := s.checkAvailability(ctx, rental.PropertyID, start, end, rental.ID); err != nil {
		return nil, err
	}

	rental.StartDate = start
	rental.EndDate = end
	rental.MonthlyAmount = req.MonthlyAmount
	if req.RentalType != "" {
		rental.RentalType = models.RentalType(req.RentalType)
	}
	rental.IncludedServices = req.IncludedServices
	if req.MaxOccupants > 0 {
		rental.MaxOccupants = req.MaxOccupants
	}
	rental.PetsAllowed = req.PetsAllowed
	rental.SmokingAllowed = req.SmokingAllowed

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	s.fillEffectiveStatus(rental)
	return rental, nil
}

// OverrideStatus manually terminates or cancels a contract. Overrides are
// terminal and always win over the date-derived status.
func (s *RentalService) OverrideStatus(ctx context.Context, id int, req *models.OverrideStatusRequest) (*models.Rental, error) {
	status := models.RentalStatus(req.Status)
	if !status.IsOverride() {
		return nil, fmt.Errorf("status must be terminated or cancelled")
	}

	rental, err := s.rentalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status.IsOverride() {
		return nil, fmt.Errorf("rental is already %s", rental.Status)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	// Free the listing again
	_ = s.propertyRepo.UpdateStatus(ctx, rental.PropertyID, models.PropertyAvailable)

	return s.Get(ctx, id)
}

func (s *RentalService) fillEffectiveStatus(r *models.Rental) {
	r.EffectiveStatus = rules.ResolveStatus(r.Status, r.StartDate, r.EndDate, timeutil.Today())
}
