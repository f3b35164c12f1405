package ctxutil

import (
	"context"
	"testing"

	"github.com/almaspay/backend/internal/constants"
)

func TestWithOperation(t *testing.T) {
	ctx := WithOperation(context.Background(), "repository", "GetByID")

	if module := GetModule(ctx); module != "repository" {
		t.Errorf("Expected module repository, got %q", module)
	}
	if function := GetFunction(ctx); function != "GetByID" {
		t.Errorf("Expected function GetByID, got %q", function)
	}
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected uint
		ok       bool
	}{
		{
			name:     "Present",
			ctx:      context.WithValue(context.Background(), constants.CtxKeyUserID, uint(9)),
			expected: 9,
			ok:       true,
		},
		{
			name: "Absent",
			ctx:  context.Background(),
			ok:   false,
		},
		{
			name: "Wrong type",
			ctx:  context.WithValue(context.Background(), constants.CtxKeyUserID, "9"),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserID(tt.ctx)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && id != tt.expected {
				t.Errorf("Expected id %d, got %d", tt.expected, id)
			}
		})
	}
}
