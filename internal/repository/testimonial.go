package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// TestimonialFilter holds the allow-listed query filters for testimonials
type TestimonialFilter struct {
	Featured *bool
}

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) List(ctx context.Context, activeOnly bool, filter TestimonialFilter) ([]model.Testimonial, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.Testimonial{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var testimonials []model.Testimonial
	if err := query.Order("display_order ASC, id ASC").Find(&testimonials).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list testimonials").
			Err(err).
			Log()
		return nil, err
	}
	return testimonials, nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create testimonial").
			String("author", testimonial.AuthorName).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Testimonial created").
		Uint("testimonial_id", testimonial.ID).
		String("author", testimonial.AuthorName).
		Log()
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Testimonial{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update testimonial").
			Uint("testimonial_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Count(&count).Error
	return count, err
}

// DeleteAll removes every testimonial. Used by the sample-data teardown.
func (r *TestimonialRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Testimonial{}).Error
}
