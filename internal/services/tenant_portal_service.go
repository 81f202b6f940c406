package services

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/auth"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

var ErrTenantInvalidLogin = errors.New("invalid phone or password")

// TenantPortalService backs the tenant-facing portal: login, dashboard data,
// payments and tickets. Staff-side tenant management goes through the
// repositories directly.
type TenantPortalService struct {
	tenantRepo  *repositories.TenantRepository
	rentalSvc   *RentalService
	paymentRepo *repositories.PaymentRepository
	ticketRepo  *repositories.MaintenanceTicketRepository
	jwtManager  *auth.JWTManager
}

func NewTenantPortalService(
	tenantRepo *repositories.TenantRepository,
	rentalSvc *RentalService,
	paymentRepo *repositories.PaymentRepository,
	ticketRepo *repositories.MaintenanceTicketRepository,
	jwtManager *auth.JWTManager,
) *TenantPortalService {
	return &TenantPortalService{
		tenantRepo:  tenantRepo,
		rentalSvc:   rentalSvc,
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		jwtManager:  jwtManager,
	}
}

// Login authenticates a tenant by phone and password
func (s *TenantPortalService) Login(ctx context.Context, req *models.TenantLoginRequest) (*models.TenantAuthResponse, error) {
	tenant, err := s.tenantRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, ErrTenantInvalidLogin
	}
	if !auth.VerifyPassword(tenant.PasswordHash, req.Password) {
		return nil, ErrTenantInvalidLogin
	}

	token, err := s.jwtManager.GenerateTenantToken(tenant, req.RememberMe)
	if err != nil {
		return nil, err
	}
	return &models.TenantAuthResponse{Token: token, Tenant: tenant}, nil
}

func (s *TenantPortalService) Profile(ctx context.Context, tenantID int) (*models.Tenant, error) {
	return s.tenantRepo.Get(ctx, tenantID)
}

// MyRentals returns the tenant's contracts with derived status filled in
func (s *TenantPortalService) MyRentals(ctx context.Context, tenantID int) ([]*models.Rental, error) {
	return s.rentalSvc.ListByTenant(ctx, tenantID)
}

func (s *TenantPortalService) MyPayments(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

func (s *TenantPortalService) MyTickets(ctx context.Context, tenantID int) ([]*models.MaintenanceTicket, error) {
	return s.ticketRepo.ListByTenant(ctx, tenantID)
}

// OpenTicket files a maintenance ticket against one of the tenant's rentals
func (s *TenantPortalService) OpenTicket(ctx context.Context, tenantID int, req *models.CreateTicketRequest) (*models.MaintenanceTicket, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	// The tenant may only report against properties they rent
	rentals, err := s.rentalSvc.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, r := range rentals {
		if r.PropertyID == req.PropertyID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("property does not belong to any of your rentals")
	}

	ticket := &models.MaintenanceTicket{
		PropertyID:       req.PropertyID,
		RentalID:         req.RentalID,
		ReportedByTenant: &tenantID,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         models.TicketPriority(req.Priority),
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return s.ticketRepo.Get(ctx, ticket.ID)
}

// ChangePassword updates the tenant's portal password
func (s *TenantPortalService) ChangePassword(ctx context.Context, tenantID int, current, next string) error {
	tenant, err := s.tenantRepo.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(tenant.PasswordHash, current) {
		return fmt.Errorf("current password is incorrect")
	}
	if len(next) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.tenantRepo.UpdatePassword(ctx, tenantID, hash)
}
