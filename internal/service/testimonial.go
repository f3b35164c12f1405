package service

import (
	"context"
	"errors"
	"time"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

type TestimonialService struct {
	testimonials *repository.TestimonialRepository
}

func NewTestimonialService(testimonials *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

func (s *TestimonialService) List(ctx context.Context, activeOnly bool, filter repository.TestimonialFilter) ([]model.Testimonial, error) {
	testimonials, err := s.testimonials.List(ctx, activeOnly, filter)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return testimonials, nil
}

func (s *TestimonialService) GetByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return testimonial, nil
}

func (s *TestimonialService) Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*model.Testimonial, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateTestimonial")

	now := time.Now()
	testimonial := &model.Testimonial{
		Content:        req.Content,
		AuthorName:     req.AuthorName,
		AuthorPosition: req.AuthorPosition,
		AuthorCompany:  req.AuthorCompany,
		Rating:         5,
		AvatarURL:      req.AvatarURL,
		IsActive:       true,
		PublishedAt:    &now,
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}
	if req.DisplayOrder != nil {
		testimonial.DisplayOrder = *req.DisplayOrder
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return testimonial, nil
}

func (s *TestimonialService) Update(ctx context.Context, id uint, req *dto.UpdateTestimonialRequest) (*model.Testimonial, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateTestimonial")

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.AuthorName != nil {
		updates["author_name"] = *req.AuthorName
	}
	if req.AuthorPosition != nil {
		updates["author_position"] = *req.AuthorPosition
	}
	if req.AuthorCompany != nil {
		updates["author_company"] = *req.AuthorCompany
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.testimonials.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteTestimonial")

	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
