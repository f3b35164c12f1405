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

type FormFieldService struct {
	fields *repository.FormFieldRepository
}

func NewFormFieldService(fields *repository.FormFieldRepository) *FormFieldService {
	return &FormFieldService{fields: fields}
}

func (s *FormFieldService) List(ctx context.Context, activeOnly bool) ([]model.FormField, error) {
	fields, err := s.fields.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return fields, nil
}

func (s *FormFieldService) GetByID(ctx context.Context, id uint) (*model.FormField, error) {
	field, err := s.fields.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return field, nil
}

// Create appends the field at the end of the form unless an explicit order
// is given.
func (s *FormFieldService) Create(ctx context.Context, req *dto.CreateFormFieldRequest) (*model.FormField, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateFormField")

	options, err := toJSON(req.Options)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}
	validation, err := toJSON(req.Validation)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	field := &model.FormField{
		Name:        req.Name,
		Label:       req.Label,
		Type:        req.Type,
		Placeholder: req.Placeholder,
		Options:     options,
		Validation:  validation,
		IsActive:    true,
	}
	if field.Type == "" {
		field.Type = model.FieldTypeText
	}
	if req.Required != nil {
		field.Required = *req.Required
	}
	if req.IsActive != nil {
		field.IsActive = *req.IsActive
	}
	if req.Order != nil {
		field.Order = *req.Order
	} else {
		next, err := s.fields.NextOrder(ctx)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		field.Order = next
	}

	if err := s.fields.Create(ctx, field); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return field, nil
}

func (s *FormFieldService) Update(ctx context.Context, id uint, req *dto.UpdateFormFieldRequest) (*model.FormField, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateFormField")

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Placeholder != nil {
		updates["placeholder"] = *req.Placeholder
	}
	if req.Required != nil {
		updates["required"] = *req.Required
	}
	if req.Options != nil {
		options, err := toJSON(*req.Options)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["options"] = options
	}
	if req.Validation != nil {
		validation, err := toJSON(req.Validation)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		updates["validation"] = validation
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.fields.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete refuses to remove default form fields
func (s *FormFieldService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteFormField")

	field, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if field.IsDefault {
		return apperrors.NewDomainError("DEFAULT_PROTECTED", "Cannot delete default form field")
	}

	if err := s.fields.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Reorder assigns each field's position in the ID list as its new order
func (s *FormFieldService) Reorder(ctx context.Context, ids []uint) ([]model.FormField, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "ReorderFormFields")

	if err := s.fields.Reorder(ctx, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return s.List(ctx, false)
}
