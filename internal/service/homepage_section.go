package service

import (
	"context"
	"errors"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

type HomepageSectionService struct {
	sections *repository.HomepageSectionRepository
}

func NewHomepageSectionService(sections *repository.HomepageSectionRepository) *HomepageSectionService {
	return &HomepageSectionService{sections: sections}
}

func (s *HomepageSectionService) List(ctx context.Context, activeOnly bool, sectionType string) ([]model.HomepageSection, error) {
	sections, err := s.sections.List(ctx, activeOnly, sectionType)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return sections, nil
}

func (s *HomepageSectionService) GetByID(ctx context.Context, id uint) (*model.HomepageSection, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return section, nil
}

func (s *HomepageSectionService) Create(ctx context.Context, req *dto.CreateHomepageSectionRequest) (*model.HomepageSection, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateHomepageSection")

	metadata, err := toJSON(req.Metadata)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	section := &model.HomepageSection{
		Title:       req.Title,
		Content:     req.Content,
		SectionType: req.SectionType,
		Metadata:    metadata,
		IsActive:    true,
	}
	if section.SectionType == "" {
		section.SectionType = model.SectionTypeCustom
	}
	if req.Order != nil {
		section.Order = *req.Order
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}

	if err := s.sections.Create(ctx, section); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return section, nil
}

func (s *HomepageSectionService) Update(ctx context.Context, id uint, req *dto.UpdateHomepageSectionRequest) (*model.HomepageSection, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateHomepageSection")

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.SectionType != nil {
		updates["section_type"] = *req.SectionType
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Metadata != nil {
		metadata, err := toJSON(*req.Metadata)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["metadata"] = metadata
	}

	if len(updates) > 0 {
		if err := s.sections.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *HomepageSectionService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteHomepageSection")

	if err := s.sections.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
