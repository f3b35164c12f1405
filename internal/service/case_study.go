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

type CaseStudyService struct {
	studies *repository.CaseStudyRepository
}

func NewCaseStudyService(studies *repository.CaseStudyRepository) *CaseStudyService {
	return &CaseStudyService{studies: studies}
}

func (s *CaseStudyService) List(ctx context.Context, publishedOnly bool, filter repository.CaseStudyFilter) ([]model.CaseStudy, error) {
	studies, err := s.studies.List(ctx, publishedOnly, filter)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return studies, nil
}

func (s *CaseStudyService) GetByID(ctx context.Context, id uint) (*model.CaseStudy, error) {
	study, err := s.studies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return study, nil
}

func (s *CaseStudyService) Create(ctx context.Context, req *dto.CreateCaseStudyRequest) (*model.CaseStudy, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateCaseStudy")

	metrics, err := toJSON(req.Metrics)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}
	images, err := toJSON(req.Images)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	study := &model.CaseStudy{
		Title:       req.Title,
		Description: req.Description,
		ClientName:  req.ClientName,
		Industry:    req.Industry,
		Challenge:   req.Challenge,
		Solution:    req.Solution,
		Results:     req.Results,
		Metrics:     metrics,
		Images:      images,
		Status:      req.Status,
	}
	if study.Status == "" {
		study.Status = model.CaseStudyStatusDraft
	}
	if req.Featured != nil {
		study.Featured = *req.Featured
	}
	if study.Status == model.CaseStudyStatusPublished {
		now := time.Now()
		study.PublishedAt = &now
	}

	if err := s.studies.Create(ctx, study); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return study, nil
}

// Update applies partial changes. The first transition into published stamps
// publishedAt; later edits leave the original timestamp alone.
func (s *CaseStudyService) Update(ctx context.Context, id uint, req *dto.UpdateCaseStudyRequest) (*model.CaseStudy, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateCaseStudy")

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.Challenge != nil {
		updates["challenge"] = *req.Challenge
	}
	if req.Solution != nil {
		updates["solution"] = *req.Solution
	}
	if req.Results != nil {
		updates["results"] = *req.Results
	}
	if req.Metrics != nil {
		metrics, err := toJSON(*req.Metrics)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["metrics"] = metrics
	}
	if req.Images != nil {
		images, err := toJSON(*req.Images)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["images"] = images
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		if *req.Status == model.CaseStudyStatusPublished && current.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := s.studies.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *CaseStudyService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteCaseStudy")

	if err := s.studies.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}
