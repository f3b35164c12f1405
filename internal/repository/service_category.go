package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type ServiceCategoryRepository struct {
	db *gorm.DB
}

func NewServiceCategoryRepository(db *gorm.DB) *ServiceCategoryRepository {
	return &ServiceCategoryRepository{db: db}
}

func (r *ServiceCategoryRepository) List(ctx context.Context, activeOnly bool) ([]model.ServiceCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.ServiceCategory{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.ServiceCategory
	if err := query.Order("display_order ASC, id ASC").Find(&categories).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list service categories").
			Err(err).
			Log()
		return nil, err
	}
	return categories, nil
}

func (r *ServiceCategoryRepository) GetByID(ctx context.Context, id uint) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *ServiceCategoryRepository) GetByName(ctx context.Context, name string) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *ServiceCategoryRepository) Create(ctx context.Context, category *model.ServiceCategory) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create service category").
			String("name", category.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Service category created").
		Uint("category_id", category.ID).
		String("name", category.Name).
		Log()
	return nil
}

func (r *ServiceCategoryRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.ServiceCategory{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update service category").
			Uint("category_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceCategoryRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.ServiceCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder rewrites display order to match the given ID sequence. The whole
// batch runs in one transaction so a failed update rolls everything back.
func (r *ServiceCategoryRepository) Reorder(ctx context.Context, ids []uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Reorder")

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&model.ServiceCategory{}).Where("id = ?", id).Update("display_order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// Count returns the number of categories
func (r *ServiceCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ServiceCategory{}).Count(&count).Error
	return count, err
}

// DeleteAll removes every category. The category seeder clears and reinserts.
func (r *ServiceCategoryRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ServiceCategory{}).Error
}
