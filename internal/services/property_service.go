package services

import (
	"context"
	"encoding/json"
	"fmt"

	"estate-backend/internal/cache"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type PropertyService struct {
	propertyRepo *repositories.PropertyRepository
}

func NewPropertyService(propertyRepo *repositories.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

func (s *PropertyService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	if req.Title == "" || req.Address == "" || req.City == "" {
		return nil, fmt.Errorf("title, address and city are required")
	}

	property := &models.Property{
		Title:            req.Title,
		Address:          req.Address,
		City:             req.City,
		PropertyType:     req.PropertyType,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		AreaSqm:          req.AreaSqm,
		SalePrice:        req.SalePrice,
		MonthlyRent:      req.MonthlyRent,
		Status:           models.PropertyAvailable,
		CapturingAgentID: req.CapturingAgentID,
		Description:      req.Description,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	cache.InvalidateListings(ctx)
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, id int) (*models.Property, error) {
	return s.propertyRepo.Get(ctx, id)
}

func (s *PropertyService) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {
	return s.propertyRepo.List(ctx, filter)
}

// ListAvailable serves the public listing, cached in Redis for a few minutes
// since it is the hottest read path
func (s *PropertyService) ListAvailable(ctx context.Context) ([]byte, error) {
	if data, ok := cache.GetCachedListings(ctx); ok {
		return data, nil
	}

	properties, err := s.propertyRepo.List(ctx, models.PropertyFilter{Status: string(models.PropertyAvailable)})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(properties)
	if err != nil {
		return nil, err
	}
	cache.CacheListings(ctx, data)
	return data, nil
}

func (s *PropertyService) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.propertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Title = req.Title
	property.Address = req.Address
	property.City = req.City
	property.PropertyType = req.PropertyType
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.AreaSqm = req.AreaSqm
	property.SalePrice = req.SalePrice
	property.MonthlyRent = req.MonthlyRent
	property.CapturingAgentID = req.CapturingAgentID
	property.Description = req.Description
	if req.Status != "" {
		property.Status = models.PropertyStatus(req.Status)
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	cache.InvalidateListings(ctx)
	cache.InvalidateProperty(ctx, id)
	return s.propertyRepo.Get(ctx, id)
}

// SetStatus publishes or retires a listing without touching the rest of the
// record. "available" puts it back on the public list, "inactive" pulls it.
func (s *PropertyService) SetStatus(ctx context.Context, id int, status models.PropertyStatus) (*models.Property, error) {
	switch status {
	case models.PropertyAvailable, models.PropertyRented, models.PropertySold, models.PropertyInactive:
	default:
		return nil, fmt.Errorf("invalid property status: %s", status)
	}

	if err := s.propertyRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	cache.InvalidateListings(ctx)
	cache.InvalidateProperty(ctx, id)
	return s.propertyRepo.Get(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, id int) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateListings(ctx)
	cache.InvalidateProperty(ctx, id)
	return nil
}
