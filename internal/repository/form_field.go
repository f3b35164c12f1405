package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type FormFieldRepository struct {
	db *gorm.DB
}

func NewFormFieldRepository(db *gorm.DB) *FormFieldRepository {
	return &FormFieldRepository{db: db}
}

func (r *FormFieldRepository) List(ctx context.Context, activeOnly bool) ([]model.FormField, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.FormField{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var fields []model.FormField
	if err := query.Order("display_order ASC, id ASC").Find(&fields).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list form fields").
			Err(err).
			Log()
		return nil, err
	}
	return fields, nil
}

func (r *FormFieldRepository) GetByID(ctx context.Context, id uint) (*model.FormField, error) {
	var field model.FormField
	if err := r.db.WithContext(ctx).First(&field, id).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *FormFieldRepository) Create(ctx context.Context, field *model.FormField) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(field).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create form field").
			String("name", field.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Form field created").
		Uint("field_id", field.ID).
		String("name", field.Name).
		Log()
	return nil
}

func (r *FormFieldRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.FormField{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update form field").
			Uint("field_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FormFieldRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.FormField{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextOrder returns the display order for a newly appended field
func (r *FormFieldRepository) NextOrder(ctx context.Context) (int, error) {
	var maxOrder *int
	err := r.db.WithContext(ctx).Model(&model.FormField{}).
		Select("MAX(display_order)").Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return 0, nil
	}
	return *maxOrder + 1, nil
}

// Reorder rewrites display order to match the given ID sequence, atomically
func (r *FormFieldRepository) Reorder(ctx context.Context, ids []uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Reorder")

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&model.FormField{}).Where("id = ?", id).Update("display_order", i)
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

// Count returns the number of form fields
func (r *FormFieldRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FormField{}).Count(&count).Error
	return count, err
}
