package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type HomepageSectionRepository struct {
	db *gorm.DB
}

func NewHomepageSectionRepository(db *gorm.DB) *HomepageSectionRepository {
	return &HomepageSectionRepository{db: db}
}

func (r *HomepageSectionRepository) List(ctx context.Context, activeOnly bool, sectionType string) ([]model.HomepageSection, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.HomepageSection{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if sectionType != "" {
		query = query.Where("section_type = ?", sectionType)
	}

	var sections []model.HomepageSection
	if err := query.Order("display_order ASC, id ASC").Find(&sections).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list homepage sections").
			Err(err).
			Log()
		return nil, err
	}
	return sections, nil
}

func (r *HomepageSectionRepository) GetByID(ctx context.Context, id uint) (*model.HomepageSection, error) {
	var section model.HomepageSection
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *HomepageSectionRepository) Create(ctx context.Context, section *model.HomepageSection) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(section).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create homepage section").
			String("title", section.Title).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Homepage section created").
		Uint("section_id", section.ID).
		String("title", section.Title).
		Log()
	return nil
}

func (r *HomepageSectionRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.HomepageSection{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update homepage section").
			Uint("section_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HomepageSectionRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.HomepageSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of homepage sections
func (r *HomepageSectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.HomepageSection{}).Count(&count).Error
	return count, err
}

// DeleteAll removes every homepage section. Used by the sample-data teardown.
func (r *HomepageSectionRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.HomepageSection{}).Error
}
