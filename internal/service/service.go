package service

import (
	"context"
	"errors"
	"strings"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

// categoryAliases maps shorthand category names to their canonical form
var categoryAliases = map[string]string{
	"processing":         "Payment Processing",
	"payment processing": "Payment Processing",
	"fx":                 "FX Management",
	"fx management":      "FX Management",
	"compliance":         "Compliance",
	"integration":        "Integration",
	"analytics":          "Analytics",
	"risk":               "Risk Management",
	"risk management":    "Risk Management",
}

// NormalizeCategory resolves a category alias to its canonical name. Unknown
// values pass through unchanged.
func NormalizeCategory(category string) string {
	if canonical, ok := categoryAliases[strings.ToLower(strings.TrimSpace(category))]; ok {
		return canonical
	}
	return category
}

type ServiceService struct {
	services *repository.ServiceRepository
}

func NewServiceService(services *repository.ServiceRepository) *ServiceService {
	return &ServiceService{services: services}
}

func (s *ServiceService) List(ctx context.Context, activeOnly bool, filter repository.ServiceFilter) ([]model.Service, error) {
	filter.Category = NormalizeCategory(filter.Category)
	services, err := s.services.List(ctx, activeOnly, filter)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return services, nil
}

func (s *ServiceService) GetByID(ctx context.Context, id uint) (*model.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return service, nil
}

func (s *ServiceService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*model.Service, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateService")

	features, err := toJSON(req.Features)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	service := &model.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    NormalizeCategory(req.Category),
		Features:    features,
		Pricing:     req.Pricing,
		Status:      req.Status,
		IsActive:    true,
	}
	if service.Icon == "" {
		service.Icon = "credit-card"
	}
	if service.Pricing == "" {
		service.Pricing = "Contact for pricing"
	}
	if service.Status == "" {
		service.Status = model.ServiceStatusDraft
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		service.Featured = *req.Featured
	}
	if req.Order != nil {
		service.Order = *req.Order
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return service, nil
}

// Update applies only the fields present in the request
func (s *ServiceService) Update(ctx context.Context, id uint, req *dto.UpdateServiceRequest) (*model.Service, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateService")

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Category != nil {
		updates["category"] = NormalizeCategory(*req.Category)
	}
	if req.Features != nil {
		features, err := toJSON(*req.Features)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["features"] = features
	}
	if req.Pricing != nil {
		updates["pricing"] = *req.Pricing
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	if len(updates) > 0 {
		if err := s.services.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *ServiceService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteService")

	if err := s.services.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
