package service

import (
	"context"
	"errors"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

// LogoStore is the persistence surface the logo service runs against,
// implemented by repository.LogoRepository.
type LogoStore interface {
	List(ctx context.Context, activeOnly bool, category string) ([]model.Logo, error)
	GetByID(ctx context.Context, id uint) (*model.Logo, error)
	GetDefaultByCategory(ctx context.Context, category string) (*model.Logo, error)
	Create(ctx context.Context, logo *model.Logo) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	SetDefault(ctx context.Context, id uint, category string) error
}

type LogoService struct {
	logos LogoStore
}

func NewLogoService(logos LogoStore) *LogoService {
	return &LogoService{logos: logos}
}

func (s *LogoService) List(ctx context.Context, activeOnly bool, category string) ([]model.Logo, error) {
	logos, err := s.logos.List(ctx, activeOnly, category)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return logos, nil
}

func (s *LogoService) GetByID(ctx context.Context, id uint) (*model.Logo, error) {
	logo, err := s.logos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return logo, nil
}

// GetDefault returns the active default logo for a category
func (s *LogoService) GetDefault(ctx context.Context, category string) (*model.Logo, error) {
	logo, err := s.logos.GetDefaultByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDomainError("RECORD_NOT_FOUND", "No default logo found for this category")
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return logo, nil
}

func (s *LogoService) Create(ctx context.Context, req *dto.CreateLogoRequest, uploadedBy uint) (*model.Logo, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateLogo")

	size := req.Size
	if size == nil {
		size = &dto.LogoSize{Width: 200, Height: 60}
	}
	sizeJSON, err := toJSON(size)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}
	tags, err := toJSON(req.Tags)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	logo := &model.Logo{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Size:         sizeJSON,
		AltText:      req.AltText,
		Tags:         tags,
		UploadedBy:   uploadedBy,
		IsActive:     true,
	}
	if logo.Category == "" {
		logo.Category = model.LogoCategoryMain
	}
	if req.IsActive != nil {
		logo.IsActive = *req.IsActive
	}

	if err := s.logos.Create(ctx, logo); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	// Creating a logo flagged as default immediately claims the category slot
	if req.IsDefault != nil && *req.IsDefault {
		if err := s.logos.SetDefault(ctx, logo.ID, logo.Category); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		logo.IsDefault = true
	}

	return logo, nil
}

func (s *LogoService) Update(ctx context.Context, id uint, req *dto.UpdateLogoRequest) (*model.Logo, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateLogo")

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Size != nil {
		size, err := toJSON(req.Size)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["size"] = size
	}
	if req.AltText != nil {
		updates["alt_text"] = *req.AltText
	}
	if req.Tags != nil {
		tags, err := toJSON(*req.Tags)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["tags"] = tags
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	// Clearing the flag is a plain column write. Setting it routes through
	// SetDefault below so the category keeps a single default.
	if req.IsDefault != nil && !*req.IsDefault {
		updates["is_default"] = false
	}

	if len(updates) > 0 {
		if err := s.logos.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	// Promoting via update routes through SetDefault so siblings get unset
	if req.IsDefault != nil && *req.IsDefault {
		category := current.Category
		if req.Category != nil {
			category = *req.Category
		}
		if err := s.logos.SetDefault(ctx, id, category); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// SetDefault promotes the logo to the sole default of its category
func (s *LogoService) SetDefault(ctx context.Context, id uint) (*model.Logo, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "SetDefaultLogo")

	logo, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.logos.SetDefault(ctx, id, logo.Category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete refuses to remove the default logo of a category
func (s *LogoService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteLogo")

	logo, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if logo.IsDefault {
		return apperrors.NewDomainError("DEFAULT_PROTECTED", "Cannot delete default logo")
	}

	if err := s.logos.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
