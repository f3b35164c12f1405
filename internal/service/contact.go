package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// statuses that close out a submission and stamp resolvedAt
var resolvingStatuses = map[string]bool{
	model.ContactStatusResolved:   true,
	model.ContactStatusClosedWon:  true,
	model.ContactStatusClosedLost: true,
}

// ContactStore is the persistence surface intake and triage run against,
// implemented by repository.ContactRepository.
type ContactStore interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error)
	List(ctx context.Context, filter repository.ContactFilter) ([]model.ContactSubmission, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*dto.ContactStats, error)
}

// ContactNotifier delivers the admin notification for a new submission,
// implemented by mailer.Mailer.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, submission *model.ContactSubmission) error
}

type ContactService struct {
	contacts ContactStore
	mail     ContactNotifier
}

func NewContactService(contacts ContactStore, mail ContactNotifier) *ContactService {
	return &ContactService{contacts: contacts, mail: mail}
}

// Intake stores a public lead form submission and notifies the admin by
// email. Notification failure never fails the submission.
func (s *ContactService) Intake(ctx context.Context, req *dto.ContactIntakeRequest) (*model.ContactSubmission, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Intake")

	submission := &model.ContactSubmission{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Company:          req.Company,
		Phone:            req.Phone,
		Subject:          req.Subject,
		Message:          req.Message,
		Urgency:          req.Urgency,
		PreferredContact: req.PreferredContact,
		Status:           model.ContactStatusNew,
		Priority:         model.PriorityNormal,
		LeadSource:       req.LeadSource,
	}
	if submission.Subject == "" {
		submission.Subject = "General Inquiry"
	}
	if submission.Urgency == "" {
		submission.Urgency = model.UrgencyMedium
	}
	if submission.PreferredContact == "" {
		submission.PreferredContact = "email"
	}
	if submission.LeadSource == "" {
		submission.LeadSource = "website"
	}

	// The form offers an "urgent" urgency level that the stored enumeration
	// does not have. It maps to high urgency with urgent priority.
	if req.Urgency == "urgent" {
		submission.Urgency = model.UrgencyHigh
		submission.Priority = model.PriorityUrgent
	}

	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.mail.SendContactNotification(ctx, submission); err != nil {
		logger.WarnWithContext(ctx, "Contact notification failed, submission kept").
			Uint("submission_id", submission.ID).
			Err(err).
			Log()
	}

	return submission, nil
}

func (s *ContactService) List(ctx context.Context, filter repository.ContactFilter) ([]model.ContactSubmission, error) {
	submissions, err := s.contacts.List(ctx, filter)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return submissions, nil
}

func (s *ContactService) GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	submission, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return submission, nil
}

// Update applies triage changes. Moving into a closing status stamps
// resolvedAt once; it is never cleared by later edits.
func (s *ContactService) Update(ctx context.Context, id uint, req *dto.UpdateContactSubmissionRequest) (*model.ContactSubmission, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateContact")

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
		if resolvingStatuses[*req.Status] && current.ResolvedAt == nil {
			updates["resolved_at"] = time.Now()
		}
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.LeadScore != nil {
		updates["lead_score"] = *req.LeadScore
	}
	if req.EstimatedValue != nil {
		updates["estimated_value"] = *req.EstimatedValue
	}
	if req.ExpectedCloseDate != nil {
		updates["expected_close_date"] = *req.ExpectedCloseDate
	}

	if len(updates) > 0 {
		if err := s.contacts.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecordNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteContact")

	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Stats returns pipeline counts for the admin dashboard
func (s *ContactService) Stats(ctx context.Context) (*dto.ContactStats, error) {
	stats, err := s.contacts.Stats(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return stats, nil
}
