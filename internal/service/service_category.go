package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name into a URL slug. Runs of anything outside
// [a-z0-9] collapse into a single hyphen.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

type ServiceCategoryService struct {
	categories *repository.ServiceCategoryRepository
}

func NewServiceCategoryService(categories *repository.ServiceCategoryRepository) *ServiceCategoryService {
	return &ServiceCategoryService{categories: categories}
}

func (s *ServiceCategoryService) List(ctx context.Context, activeOnly bool) ([]model.ServiceCategory, error) {
	categories, err := s.categories.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return categories, nil
}

func (s *ServiceCategoryService) GetByID(ctx context.Context, id uint) (*model.ServiceCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return category, nil
}

func (s *ServiceCategoryService) Create(ctx context.Context, req *dto.CreateServiceCategoryRequest) (*model.ServiceCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateServiceCategory")

	if _, err := s.categories.GetByName(ctx, req.Name); err == nil {
		return nil, apperrors.NewDomainError("DUPLICATE_RECORD", "Service category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	category := &model.ServiceCategory{
		Name:        req.Name,
		Slug:        Slugify(req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    true,
	}
	if category.Icon == "" {
		category.Icon = "settings"
	}
	if category.Color == "" {
		category.Color = "#3B82F6"
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		category.IsDefault = *req.IsDefault
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return category, nil
}

func (s *ServiceCategoryService) Update(ctx context.Context, id uint, req *dto.UpdateServiceCategoryRequest) (*model.ServiceCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateServiceCategory")

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = Slugify(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsDefault != nil {
		updates["is_default"] = *req.IsDefault
	}

	if len(updates) > 0 {
		if err := s.categories.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete refuses to remove default categories
func (s *ServiceCategoryService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteServiceCategory")

	category, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return apperrors.NewDomainError("DEFAULT_PROTECTED", "Cannot delete default service category")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Reorder assigns each category's position in the ID list as its new order
func (s *ServiceCategoryService) Reorder(ctx context.Context, ids []uint) ([]model.ServiceCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "ReorderServiceCategories")

	if err := s.categories.Reorder(ctx, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return s.List(ctx, false)
}
