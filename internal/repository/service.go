package repository

import (
	"context"
	"time"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// ServiceFilter holds the allow-listed query filters for service listings
type ServiceFilter struct {
	Category string
	Status   string
	Featured *bool
}

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns services ordered by display order. When activeOnly is set only
// isActive rows are returned (the public listing).
func (r *ServiceRepository) List(ctx context.Context, activeOnly bool, filter ServiceFilter) ([]model.Service, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	start := time.Now()
	query := r.db.WithContext(ctx).Model(&model.Service{})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var services []model.Service
	if err := query.Order("display_order ASC, id ASC").Find(&services).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list services").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uint) (*model.Service, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "GetByID")

	var service model.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service *model.Service) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	start := time.Now()
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create service").
			String("title", service.Title).
			Duration(time.Since(start)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Service created").
		Uint("service_id", service.ID).
		String("title", service.Title).
		Log()
	return nil
}

// Update applies the given column updates. Returns gorm.ErrRecordNotFound
// when no row matched.
func (r *ServiceRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update service").
			Uint("service_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete service").
			Uint("service_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Service deleted").
		Uint("service_id", id).
		Log()
	return nil
}

// Count returns the number of services
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Service{}).Count(&count).Error
	return count, err
}

// DeleteAll removes every service row. Used by the sample-data teardown.
func (r *ServiceRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Service{}).Error
}
