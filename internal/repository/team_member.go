package repository

import (
	"context"

	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) List(ctx context.Context, activeOnly bool) ([]model.TeamMember, error) {
	ctx = ctxutil.WithOperation(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.TeamMember{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var members []model.TeamMember
	if err := query.Order("display_order ASC, id ASC").Find(&members).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to list team members").
			Err(err).
			Log()
		return nil, err
	}
	return members, nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create team member").
			String("name", member.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Team member created").
		Uint("member_id", member.ID).
		String("name", member.Name).
		Log()
	return nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.TeamMember{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update team member").
			Uint("member_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextOrder returns the display order for a newly appended member
func (r *TeamMemberRepository) NextOrder(ctx context.Context) (int, error) {
	var maxOrder *int
	err := r.db.WithContext(ctx).Model(&model.TeamMember{}).
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
func (r *TeamMemberRepository) Reorder(ctx context.Context, ids []uint) error {
	ctx = ctxutil.WithOperation(ctx, "repository", "Reorder")

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&model.TeamMember{}).Where("id = ?", id).Update("display_order", i)
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

// Count returns the number of team members
func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TeamMember{}).Count(&count).Error
	return count, err
}
