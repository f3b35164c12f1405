package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubContactStore struct {
	records map[uint]*model.ContactSubmission
	nextID  uint
}

func (s *stubContactStore) Create(_ context.Context, submission *model.ContactSubmission) error {
	s.nextID++
	submission.ID = s.nextID
	stored := *submission
	s.records[submission.ID] = &stored
	return nil
}

func (s *stubContactStore) GetByID(_ context.Context, id uint) (*model.ContactSubmission, error) {
	stored, ok := s.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *stored
	return &clone, nil
}

func (s *stubContactStore) List(_ context.Context, _ repository.ContactFilter) ([]model.ContactSubmission, error) {
	return nil, nil
}

func (s *stubContactStore) Update(_ context.Context, _ uint, _ map[string]interface{}) error {
	return nil
}

func (s *stubContactStore) Delete(_ context.Context, _ uint) error {
	return nil
}

func (s *stubContactStore) Stats(_ context.Context) (*dto.ContactStats, error) {
	return &dto.ContactStats{}, nil
}

type stubNotifier struct{}

func (stubNotifier) SendContactNotification(_ context.Context, _ *model.ContactSubmission) error {
	return nil
}

func TestContactIntakeResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &stubContactStore{records: make(map[uint]*model.ContactSubmission)}
	h := NewContactHandler(service.NewContactService(store, stubNotifier{}))

	router := gin.New()
	router.POST("/api/contact", h.Intake)

	payload := `{"name":"Visitor","email":"visitor@example.com","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}

	if body["success"] != true {
		t.Errorf("Expected success=true, got %v", body["success"])
	}
	if body["submissionId"] != float64(1) {
		t.Errorf("Expected submissionId 1, got %v", body["submissionId"])
	}
	if _, ok := body["submission"]; !ok {
		t.Error("Expected submission payload in response")
	}
}

func TestContactIntakeValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &stubContactStore{records: make(map[uint]*model.ContactSubmission)}
	h := NewContactHandler(service.NewContactService(store, stubNotifier{}))

	router := gin.New()
	router.POST("/api/contact", h.Intake)

	payload := `{"name":"Visitor","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if len(store.records) != 0 {
		t.Error("Expected nothing stored on a rejected payload")
	}
}
