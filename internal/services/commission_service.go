package services

import (
	"context"
	"fmt"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/rules"
)

type CommissionService struct {
	commissionRepo *repositories.CommissionRepository
	propertyRepo   *repositories.PropertyRepository
	userRepo       *repositories.UserRepository
}

func NewCommissionService(
	commissionRepo *repositories.CommissionRepository,
	propertyRepo *repositories.PropertyRepository,
	userRepo *repositories.UserRepository,
) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
	}
}

// Create records a completed sale. Shares are always computed server-side so
// the 100/40/60 split cannot be tampered with from the client.
func (s *CommissionService) Create(ctx context.Context, req *models.CreateCommissionRequest) (*models.Commission, error) {
	if req.SalePrice <= 0 {
		return nil, fmt.Errorf("sale_price must be positive")
	}
	if req.TotalRate <= 0 || req.TotalRate > 100 {
		return nil, fmt.Errorf("total_rate must be between 0 and 100")
	}

	property, err := s.propertyRepo.Get(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("property not found")
	}
	if _, err := s.userRepo.Get(ctx, req.CapturingAgentID); err != nil {
		return nil, fmt.Errorf("capturing agent not found")
	}
	if _, err := s.userRepo.Get(ctx, req.SellingAgentID); err != nil {
		return nil, fmt.Errorf("selling agent not found")
	}

	capturingShare, sellingShare := rules.ComputeShares(req.CapturingAgentID, req.SellingAgentID)

	commission := &models.Commission{
		PropertyID:       req.PropertyID,
		SalePrice:        req.SalePrice,
		TotalRate:        req.TotalRate,
		CapturingAgentID: req.CapturingAgentID,
		SellingAgentID:   req.SellingAgentID,
		CapturingShare:   capturingShare,
		SellingShare:     sellingShare,
		Status:           models.CommissionPending,
	}
	if err := s.commissionRepo.Create(ctx, commission); err != nil {
		return nil, err
	}

	// A sold property leaves the listing
	_ = s.propertyRepo.UpdateStatus(ctx, property.ID, models.PropertySold)

	return s.commissionRepo.Get(ctx, commission.ID)
}

func (s *CommissionService) Get(ctx context.Context, id int) (*models.Commission, error) {
	return s.commissionRepo.Get(ctx, id)
}

func (s *CommissionService) List(ctx context.Context) ([]*models.Commission, error) {
	return s.commissionRepo.List(ctx)
}

func (s *CommissionService) ListByAgent(ctx context.Context, agentID int) ([]*models.Commission, error) {
	return s.commissionRepo.ListByAgent(ctx, agentID)
}

func (s *CommissionService) MarkPaid(ctx context.Context, id int) (*models.Commission, error) {
	if err := s.commissionRepo.MarkPaid(ctx, id); err != nil {
		return nil, err
	}
	return s.commissionRepo.Get(ctx, id)
}

// Earnings totals one agent's commission amounts across every sale they
// captured or closed
func (s *CommissionService) Earnings(ctx context.Context, agentID int) (*models.AgentEarnings, error) {
	agent, err := s.userRepo.Get(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("agent not found")
	}

	commissions, err := s.commissionRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	earnings := &models.AgentEarnings{AgentID: agentID, AgentName: agent.Name}
	for _, c := range commissions {
		amount := rules.AmountFor(c, agentID)
		earnings.Total += amount
		if c.Status == models.CommissionPaid {
			earnings.Paid += amount
		} else {
			earnings.Outstanding += amount
		}
		earnings.Count++
	}
	return earnings, nil
}
