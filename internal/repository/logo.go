package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type LogoRepository struct {
	db *gorm.DB
}

func NewLogoRepository(db *gorm.DB) *LogoRepository {
	return &LogoRepository{db: db}
}

func (r *LogoRepository) List(ctx context.Context, activeOnly bool, category string) ([]model.Logo, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.Logo{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var logos []model.Logo
	if err := query.Order("created_at DESC").Find(&logos).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list logos").
			Err(err).
			Log()
		return nil, err
	}
	return logos, nil
}

func (r *LogoRepository) GetByID(ctx context.Context, id uint) (*model.Logo, error) {
	var logo model.Logo
	if err := r.db.WithContext(ctx).First(&logo, id).Error; err != nil {
		return nil, err
	}
	return &logo, nil
}

// GetDefaultByCategory returns the default logo for a category
func (r *LogoRepository) GetDefaultByCategory(ctx context.Context, category string) (*model.Logo, error) {
	var logo model.Logo
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_default = ? AND is_active = ?", category, true, true).
		First(&logo).Error
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *LogoRepository) Create(ctx context.Context, logo *model.Logo) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(logo).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create logo").
			String("name", logo.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Logo created").
		Uint("logo_id", logo.ID).
		String("name", logo.Name).
		String("category", logo.Category).
		Log()
	return nil
}

func (r *LogoRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Logo{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update logo").
			Uint("logo_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LogoRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Logo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetDefault makes the given logo the sole default of its category. The unset
// and set steps share one transaction so the partition never ends up with two
// defaults or none.
func (r *LogoRepository) SetDefault(ctx context.Context, id uint, category string) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "SetDefault")

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Logo{}).
			Where("category = ? AND id <> ?", category, id).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Logo{}).Where("id = ?", id).Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the number of logos
func (r *LogoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Logo{}).Count(&count).Error
	return count, err
}
