package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	"gorm.io/gorm"
)

type fakeContactStore struct {
	records map[uint]*model.ContactSubmission
	nextID  uint
	updated map[string]interface{}
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{records: make(map[uint]*model.ContactSubmission)}
}

func (f *fakeContactStore) Create(_ context.Context, submission *model.ContactSubmission) error {
	f.nextID++
	submission.ID = f.nextID
	stored := *submission
	f.records[submission.ID] = &stored
	return nil
}

func (f *fakeContactStore) GetByID(_ context.Context, id uint) (*model.ContactSubmission, error) {
	stored, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *stored
	return &clone, nil
}

func (f *fakeContactStore) List(_ context.Context, _ repository.ContactFilter) ([]model.ContactSubmission, error) {
	out := make([]model.ContactSubmission, 0, len(f.records))
	for _, s := range f.records {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeContactStore) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	stored, ok := f.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.updated = updates
	if status, ok := updates["status"].(string); ok {
		stored.Status = status
	}
	if resolvedAt, ok := updates["resolved_at"].(time.Time); ok {
		stored.ResolvedAt = &resolvedAt
	}
	if notes, ok := updates["notes"].(string); ok {
		stored.Notes = notes
	}
	return nil
}

func (f *fakeContactStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeContactStore) Stats(_ context.Context) (*dto.ContactStats, error) {
	return &dto.ContactStats{Total: int64(len(f.records))}, nil
}

type fakeNotifier struct {
	err  error
	sent []*model.ContactSubmission
}

func (f *fakeNotifier) SendContactNotification(_ context.Context, submission *model.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, submission)
	return nil
}

func TestIntakeDefaults(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactService(store, &fakeNotifier{})

	submission, err := svc.Intake(context.Background(), &dto.ContactIntakeRequest{
		Name:    "Visitor",
		Email:   "Visitor@Example.COM",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Intake failed: %v", err)
	}

	if submission.ID == 0 {
		t.Error("Expected an assigned ID")
	}
	if submission.Email != "visitor@example.com" {
		t.Errorf("Expected lowercased email, got %q", submission.Email)
	}
	if submission.Subject != "General Inquiry" {
		t.Errorf("Expected default subject, got %q", submission.Subject)
	}
	if submission.Urgency != model.UrgencyMedium {
		t.Errorf("Expected default urgency medium, got %q", submission.Urgency)
	}
	if submission.PreferredContact != "email" {
		t.Errorf("Expected default preferred contact email, got %q", submission.PreferredContact)
	}
	if submission.LeadSource != "website" {
		t.Errorf("Expected default lead source website, got %q", submission.LeadSource)
	}
	if submission.Status != model.ContactStatusNew {
		t.Errorf("Expected status new, got %q", submission.Status)
	}
	if submission.Priority != model.PriorityNormal {
		t.Errorf("Expected priority normal, got %q", submission.Priority)
	}
}

func TestIntakeUrgencyMapping(t *testing.T) {
	tests := []struct {
		name             string
		urgency          string
		expectedUrgency  string
		expectedPriority string
	}{
		{
			name:             "Urgent maps to high urgency with urgent priority",
			urgency:          "urgent",
			expectedUrgency:  model.UrgencyHigh,
			expectedPriority: model.PriorityUrgent,
		},
		{
			name:             "High stays high with normal priority",
			urgency:          "high",
			expectedUrgency:  model.UrgencyHigh,
			expectedPriority: model.PriorityNormal,
		},
		{
			name:             "Low passes through",
			urgency:          "low",
			expectedUrgency:  model.UrgencyLow,
			expectedPriority: model.PriorityNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactService(newFakeContactStore(), &fakeNotifier{})

			submission, err := svc.Intake(context.Background(), &dto.ContactIntakeRequest{
				Name:    "Visitor",
				Email:   "visitor@example.com",
				Message: "Hello",
				Urgency: tt.urgency,
			})
			if err != nil {
				t.Fatalf("Intake failed: %v", err)
			}

			if submission.Urgency != tt.expectedUrgency {
				t.Errorf("Expected urgency %q, got %q", tt.expectedUrgency, submission.Urgency)
			}
			if submission.Priority != tt.expectedPriority {
				t.Errorf("Expected priority %q, got %q", tt.expectedPriority, submission.Priority)
			}
		})
	}
}

func TestIntakeSurvivesNotificationFailure(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactService(store, &fakeNotifier{err: errors.New("smtp down")})

	submission, err := svc.Intake(context.Background(), &dto.ContactIntakeRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Expected submission to be kept, got %v", err)
	}
	if _, ok := store.records[submission.ID]; !ok {
		t.Error("Submission not stored")
	}
}

func TestUpdateStampsResolvedAt(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		stamped bool
	}{
		{name: "Resolved stamps", status: model.ContactStatusResolved, stamped: true},
		{name: "Closed-won stamps", status: model.ContactStatusClosedWon, stamped: true},
		{name: "Closed-lost stamps", status: model.ContactStatusClosedLost, stamped: true},
		{name: "Contacted does not stamp", status: model.ContactStatusContacted, stamped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeContactStore()
			svc := NewContactService(store, &fakeNotifier{})

			created, err := svc.Intake(context.Background(), &dto.ContactIntakeRequest{
				Name:    "Visitor",
				Email:   "visitor@example.com",
				Message: "Hello",
			})
			if err != nil {
				t.Fatalf("Intake failed: %v", err)
			}

			updated, err := svc.Update(context.Background(), created.ID,
				&dto.UpdateContactSubmissionRequest{Status: &tt.status})
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}

			if tt.stamped && updated.ResolvedAt == nil {
				t.Error("Expected resolvedAt to be stamped")
			}
			if !tt.stamped && updated.ResolvedAt != nil {
				t.Error("Expected resolvedAt to stay empty")
			}
		})
	}
}

func TestUpdateStampsResolvedAtOnce(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactService(store, &fakeNotifier{})

	created, err := svc.Intake(context.Background(), &dto.ContactIntakeRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Intake failed: %v", err)
	}

	resolved := model.ContactStatusResolved
	first, err := svc.Update(context.Background(), created.ID,
		&dto.UpdateContactSubmissionRequest{Status: &resolved})
	if err != nil {
		t.Fatalf("First update failed: %v", err)
	}
	if first.ResolvedAt == nil {
		t.Fatal("Expected resolvedAt to be stamped")
	}

	closedWon := model.ContactStatusClosedWon
	if _, err := svc.Update(context.Background(), created.ID,
		&dto.UpdateContactSubmissionRequest{Status: &closedWon}); err != nil {
		t.Fatalf("Second update failed: %v", err)
	}

	if _, exists := store.updated["resolved_at"]; exists {
		t.Error("Expected resolvedAt not to be restamped on an already-resolved submission")
	}
}

func TestUpdateUnknownSubmission(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), &fakeNotifier{})

	status := model.ContactStatusContacted
	_, err := svc.Update(context.Background(), 99,
		&dto.UpdateContactSubmissionRequest{Status: &status})
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}
