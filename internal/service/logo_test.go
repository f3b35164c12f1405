package service

import (
	"context"
	"errors"
	"testing"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"gorm.io/gorm"
)

type fakeLogoStore struct {
	records    map[uint]*model.Logo
	nextID     uint
	updated    map[string]interface{}
	defaulted  []uint
	deleteHits int
}

func newFakeLogoStore() *fakeLogoStore {
	return &fakeLogoStore{records: make(map[uint]*model.Logo)}
}

func (f *fakeLogoStore) List(_ context.Context, _ bool, _ string) ([]model.Logo, error) {
	out := make([]model.Logo, 0, len(f.records))
	for _, l := range f.records {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLogoStore) GetByID(_ context.Context, id uint) (*model.Logo, error) {
	stored, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *stored
	return &clone, nil
}

func (f *fakeLogoStore) GetDefaultByCategory(_ context.Context, category string) (*model.Logo, error) {
	for _, l := range f.records {
		if l.Category == category && l.IsDefault {
			clone := *l
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLogoStore) Create(_ context.Context, logo *model.Logo) error {
	f.nextID++
	logo.ID = f.nextID
	stored := *logo
	f.records[logo.ID] = &stored
	return nil
}

func (f *fakeLogoStore) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	stored, ok := f.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.updated = updates
	if name, ok := updates["name"].(string); ok {
		stored.Name = name
	}
	if isDefault, ok := updates["is_default"].(bool); ok {
		stored.IsDefault = isDefault
	}
	return nil
}

func (f *fakeLogoStore) Delete(_ context.Context, id uint) error {
	f.deleteHits++
	if _, ok := f.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeLogoStore) SetDefault(_ context.Context, id uint, category string) error {
	target, ok := f.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.defaulted = append(f.defaulted, id)
	for _, l := range f.records {
		if l.Category == category {
			l.IsDefault = false
		}
	}
	target.IsDefault = true
	return nil
}

func (f *fakeLogoStore) seed(logo model.Logo) uint {
	f.nextID++
	logo.ID = f.nextID
	f.records[logo.ID] = &logo
	return logo.ID
}

func ptrBool(v bool) *bool { return &v }

func TestLogoUpdatePartial(t *testing.T) {
	store := newFakeLogoStore()
	id := store.seed(model.Logo{Name: "Main", Category: model.LogoCategoryMain, IsActive: true})
	svc := NewLogoService(store)

	name := "Main v2"
	logo, err := svc.Update(context.Background(), id, &dto.UpdateLogoRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if logo.Name != "Main v2" {
		t.Errorf("Expected updated name, got %q", logo.Name)
	}
	if len(store.updated) != 1 {
		t.Errorf("Expected exactly one column write, got %v", store.updated)
	}
	if !logo.IsActive {
		t.Error("Expected untouched isActive to survive")
	}
}

func TestLogoUpdateClearsDefault(t *testing.T) {
	store := newFakeLogoStore()
	id := store.seed(model.Logo{Name: "Main", Category: model.LogoCategoryMain, IsDefault: true})
	svc := NewLogoService(store)

	logo, err := svc.Update(context.Background(), id, &dto.UpdateLogoRequest{IsDefault: ptrBool(false)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if logo.IsDefault {
		t.Error("Expected isDefault to be cleared")
	}
	if v, ok := store.updated["is_default"]; !ok || v != false {
		t.Errorf("Expected is_default=false column write, got %v", store.updated)
	}
	if len(store.defaulted) != 0 {
		t.Error("Clearing must not route through SetDefault")
	}
}

func TestLogoUpdatePromotesDefault(t *testing.T) {
	store := newFakeLogoStore()
	oldID := store.seed(model.Logo{Name: "Old", Category: model.LogoCategoryFooter, IsDefault: true})
	newID := store.seed(model.Logo{Name: "New", Category: model.LogoCategoryFooter})
	svc := NewLogoService(store)

	logo, err := svc.Update(context.Background(), newID, &dto.UpdateLogoRequest{IsDefault: ptrBool(true)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !logo.IsDefault {
		t.Error("Expected promoted logo to be default")
	}
	if store.records[oldID].IsDefault {
		t.Error("Expected previous default to be unset")
	}
}

func TestLogoSetDefaultSingleWinner(t *testing.T) {
	store := newFakeLogoStore()
	first := store.seed(model.Logo{Name: "A", Category: model.LogoCategoryMain, IsDefault: true})
	second := store.seed(model.Logo{Name: "B", Category: model.LogoCategoryMain})
	other := store.seed(model.Logo{Name: "C", Category: model.LogoCategoryFavicon, IsDefault: true})
	svc := NewLogoService(store)

	if _, err := svc.SetDefault(context.Background(), second); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}

	if store.records[first].IsDefault {
		t.Error("Expected old default to be unset")
	}
	if !store.records[second].IsDefault {
		t.Error("Expected target to become default")
	}
	if !store.records[other].IsDefault {
		t.Error("Expected other category's default to be untouched")
	}
}

func TestLogoDeleteDefaultGuard(t *testing.T) {
	store := newFakeLogoStore()
	id := store.seed(model.Logo{Name: "Main", Category: model.LogoCategoryMain, IsDefault: true})
	svc := NewLogoService(store)

	err := svc.Delete(context.Background(), id)
	if err == nil {
		t.Fatal("Expected delete to be refused")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Expected a domain error, got %v", err)
	}
	if domainErr.Code != "DEFAULT_PROTECTED" {
		t.Errorf("Expected code DEFAULT_PROTECTED, got %s", domainErr.Code)
	}
	if domainErr.Message != "Cannot delete default logo" {
		t.Errorf("Unexpected message %q", domainErr.Message)
	}
	if store.deleteHits != 0 {
		t.Error("Expected no delete call against the store")
	}
}

func TestLogoCreateDefaults(t *testing.T) {
	store := newFakeLogoStore()
	svc := NewLogoService(store)

	logo, err := svc.Create(context.Background(), &dto.CreateLogoRequest{
		Name:     "Fresh",
		ImageURL: "https://cdn.example.com/logo.png",
	}, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if logo.Category != model.LogoCategoryMain {
		t.Errorf("Expected default category main, got %q", logo.Category)
	}
	if !logo.IsActive {
		t.Error("Expected new logo to be active")
	}
	if logo.UploadedBy != 3 {
		t.Errorf("Expected uploadedBy 3, got %d", logo.UploadedBy)
	}
	if string(logo.Size) != `{"width":200,"height":60}` {
		t.Errorf("Unexpected default size %s", logo.Size)
	}
}
