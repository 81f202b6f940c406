package services

import (
	"context"
	"fmt"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/timeutil"
)

type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	rentalRepo  *repositories.RentalRepository
}

func NewPaymentService(paymentRepo *repositories.PaymentRepository, rentalRepo *repositories.RentalRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, rentalRepo: rentalRepo}
}

// Schedule creates a pending payment for a rental
func (s *PaymentService) Schedule(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	dueDate, err := timeutil.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due_date: %w", err)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	rental, err := s.rentalRepo.Get(ctx, req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}

	payment := &models.Payment{
		RentalID: rental.ID,
		TenantID: rental.TenantID,
		DueDate:  dueDate,
		Amount:   req.Amount,
		Status:   models.PaymentPending,
		Notes:    req.Notes,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return s.paymentRepo.Get(ctx, payment.ID)
}

// ScheduleMonthly generates one pending payment per month of the contract,
// each due on the contract start day-of-month
func (s *PaymentService) ScheduleMonthly(ctx context.Context, rentalID int) ([]*models.Payment, error) {
	rental, err := s.rentalRepo.Get(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}

	var created []*models.Payment
	for due := rental.StartDate; !due.After(rental.EndDate); due = due.AddDate(0, 1, 0) {
		payment := &models.Payment{
			RentalID: rental.ID,
			TenantID: rental.TenantID,
			DueDate:  due,
			Amount:   rental.MonthlyAmount,
			Status:   models.PaymentPending,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return created, err
		}
		created = append(created, payment)
	}
	return created, nil
}

// Record marks a scheduled payment as paid and assigns a receipt number
func (s *PaymentService) Record(ctx context.Context, id int, req *models.RecordPaymentRequest, processedBy int) (*models.Payment, error) {
	payment, err := s.paymentRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("payment not found")
	}
	if payment.Status == models.PaymentPaid {
		return nil, fmt.Errorf("payment already settled")
	}

	paidDate := timeutil.Today()
	if req.PaidDate != "" {
		d, err := timeutil.ParseDate(req.PaidDate)
		if err != nil {
			return nil, fmt.Errorf("invalid paid_date: %w", err)
		}
		paidDate = d
	}

	var by *int
	if processedBy != 0 {
		by = &processedBy
	}
	return s.paymentRepo.MarkPaid(ctx, id, paidDate, req.Method, by, req.Notes)
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	return s.paymentRepo.Get(ctx, id)
}

func (s *PaymentService) ListByRental(ctx context.Context, rentalID int) ([]*models.Payment, error) {
	return s.paymentRepo.ListByRental(ctx, rentalID)
}

func (s *PaymentService) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

func (s *PaymentService) ListByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Payment, error) {
	return s.paymentRepo.ListByStatus(ctx, status)
}

// MarkOverdue flips pending payments past due to overdue, returning the count
func (s *PaymentService) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	return s.paymentRepo.MarkOverdueBefore(ctx, today)
}

func (s *PaymentService) Delete(ctx context.Context, id int) error {
	return s.paymentRepo.Delete(ctx, id)
}
