package service

import (
	"context"
	"errors"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"gorm.io/gorm"
)

type TeamMemberService struct {
	members *repository.TeamMemberRepository
}

func NewTeamMemberService(members *repository.TeamMemberRepository) *TeamMemberService {
	return &TeamMemberService{members: members}
}

func (s *TeamMemberService) List(ctx context.Context, activeOnly bool) ([]model.TeamMember, error) {
	members, err := s.members.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return members, nil
}

func (s *TeamMemberService) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return member, nil
}

// Create appends the member at the end of the display order unless an
// explicit order is given.
func (s *TeamMemberService) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*model.TeamMember, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateTeamMember")

	member := &model.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		Image:    req.Image,
		LinkedIn: req.LinkedIn,
		Email:    req.Email,
		IsActive: true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.Order != nil {
		member.Order = *req.Order
	} else {
		next, err := s.members.NextOrder(ctx)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		member.Order = next
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return member, nil
}

func (s *TeamMemberService) Update(ctx context.Context, id uint, req *dto.UpdateTeamMemberRequest) (*model.TeamMember, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateTeamMember")

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.LinkedIn != nil {
		updates["linkedin"] = *req.LinkedIn
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.members.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete refuses to remove default team members
func (s *TeamMemberService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteTeamMember")

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if member.IsDefault {
		return apperrors.NewDomainError("DEFAULT_PROTECTED", "Cannot delete default team member")
	}

	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Reorder assigns each member's position in the ID list as its new order
func (s *TeamMemberService) Reorder(ctx context.Context, ids []uint) ([]model.TeamMember, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "ReorderTeamMembers")

	if err := s.members.Reorder(ctx, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return s.List(ctx, false)
}
