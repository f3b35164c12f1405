package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// CaseStudyFilter holds the allow-listed query filters for case studies
type CaseStudyFilter struct {
	Status   string
	Industry string
	Featured *bool
}

type CaseStudyRepository struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

// List returns case studies newest first. publishedOnly restricts to the
// public published set.
func (r *CaseStudyRepository) List(ctx context.Context, publishedOnly bool, filter CaseStudyFilter) ([]model.CaseStudy, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.CaseStudy{})
	if publishedOnly {
		query = query.Where("status = ?", model.CaseStudyStatusPublished)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var studies []model.CaseStudy
	if err := query.Order("created_at DESC").Find(&studies).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list case studies").
			Err(err).
			Log()
		return nil, err
	}
	return studies, nil
}

func (r *CaseStudyRepository) GetByID(ctx context.Context, id uint) (*model.CaseStudy, error) {
	var study model.CaseStudy
	if err := r.db.WithContext(ctx).First(&study, id).Error; err != nil {
		return nil, err
	}
	return &study, nil
}

func (r *CaseStudyRepository) Create(ctx context.Context, study *model.CaseStudy) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(study).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create case study").
			String("title", study.Title).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Case study created").
		Uint("case_study_id", study.ID).
		String("title", study.Title).
		Log()
	return nil
}

func (r *CaseStudyRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.CaseStudy{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update case study").
			Uint("case_study_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CaseStudyRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.CaseStudy{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of case studies
func (r *CaseStudyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CaseStudy{}).Count(&count).Error
	return count, err
}

// DeleteAll removes every case study. Used by the sample-data teardown.
func (r *CaseStudyRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.CaseStudy{}).Error
}
