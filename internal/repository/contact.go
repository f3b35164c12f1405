package repository

import (
	"context"
	"time"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// ContactFilter holds the allow-listed query filters for submissions
type ContactFilter struct {
	Status   string
	Urgency  string
	Priority string
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context, filter ContactFilter) ([]model.ContactSubmission, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.ContactSubmission{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Urgency != "" {
		query = query.Where("urgency = ?", filter.Urgency)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var submissions []model.ContactSubmission
	if err := query.Order("created_at DESC").Find(&submissions).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list contact submissions").
			Err(err).
			Log()
		return nil, err
	}
	return submissions, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	var submission model.ContactSubmission
	if err := r.db.WithContext(ctx).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *ContactRepository) Create(ctx context.Context, submission *model.ContactSubmission) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	start := time.Now()
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create contact submission").
			String("email", submission.Email).
			Duration(time.Since(start)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Contact submission created").
		Uint("submission_id", submission.ID).
		String("email", submission.Email).
		String("urgency", submission.Urgency).
		Log()
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.ContactSubmission{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update contact submission").
			Uint("submission_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Stats aggregates pipeline counts. Recent means created in the last 30 days.
func (r *ContactRepository) Stats(ctx context.Context) (*dto.ContactStats, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "Stats")

	stats := &dto.ContactStats{}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.ContactSubmission{})
	}

	counts := []struct {
		dest  *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&stats.New, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusNew) }},
		{&stats.Qualified, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusQualified) }},
		{&stats.Proposal, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusProposal) }},
		{&stats.ClosedWon, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusClosedWon) }},
		{&stats.ClosedLost, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusClosedLost) }},
		{&stats.Recent, func(q *gorm.DB) *gorm.DB {
			return q.Where("created_at >= ?", time.Now().AddDate(0, 0, -30))
		}},
		{&stats.InProgress, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusInProgress) }},
		{&stats.Resolved, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", model.ContactStatusResolved) }},
	}

	for _, c := range counts {
		if err := c.scope(base()).Count(c.dest).Error; err != nil {
			logger.ErrorWithContext(ctx, "Failed to compute contact stats").
				Err(err).
				Log()
			return nil, err
		}
	}

	return stats, nil
}

// DeleteAll removes every submission. Used by the sample-data teardown.
func (r *ContactRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ContactSubmission{}).Error
}
