package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/almaspay/backend/config"
	"github.com/almaspay/backend/internal/constants"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/service"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, adminOnly bool) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := service.NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    time.Hour,
		},
	})
	mw := NewJWTMiddleware(tokens)

	router := gin.New()
	handlers := []gin.HandlerFunc{mw.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, mw.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	router.GET("/protected", handlers...)

	return router, tokens
}

func issueToken(t *testing.T, tokens *service.TokenService, role string, ttlOffset time.Duration) string {
	t.Helper()

	svc := tokens
	if ttlOffset < 0 {
		svc = service.NewTokenService(&config.Config{
			JWT: config.JWTConfig{
				AccessSecret:  "test-access-secret",
				RefreshSecret: "test-refresh-secret",
				AccessTTL:     ttlOffset,
				RefreshTTL:    time.Hour,
			},
		})
	}

	user := &model.User{Email: "user@example.com", Role: role}
	user.ID = 7
	token, err := svc.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newTestRouter(t, false)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   constants.AuthCodeUnauthenticated,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   constants.AuthCodeUnauthenticated,
		},
		{
			name:           "Empty bearer value",
			header:         "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   constants.AuthCodeUnauthenticated,
		},
		{
			name:           "Garbage token",
			header:         "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   constants.AuthCodeInvalidToken,
		},
		{
			name:           "Expired token",
			header:         "Bearer " + issueToken(t, tokens, "user", -time.Minute),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   constants.AuthCodeTokenExpired,
		},
		{
			name:           "Valid token",
			header:         "Bearer " + issueToken(t, tokens, "user", 0),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Lowercase bearer scheme",
			header:         "bearer " + issueToken(t, tokens, "user", 0),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.expectedCode != "" {
				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("Failed to decode body: %v", err)
				}
				if body["code"] != tt.expectedCode {
					t.Errorf("Expected code %s, got %v", tt.expectedCode, body["code"])
				}
				if body["success"] != false {
					t.Errorf("Expected success=false, got %v", body["success"])
				}
			}
		})
	}
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	router, tokens := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "user", 0))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["id"] != float64(7) {
		t.Errorf("Expected user id 7, got %v", body["id"])
	}
}

func TestRequireAdmin(t *testing.T) {
	router, tokens := newTestRouter(t, true)

	tests := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{
			name:           "Admin allowed",
			role:           "admin",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Regular user forbidden",
			role:           "user",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, tt.role, 0))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.expectedStatus == http.StatusForbidden {
				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("Failed to decode body: %v", err)
				}
				if body["error"] != constants.MsgForbidden {
					t.Errorf("Expected error %q, got %v", constants.MsgForbidden, body["error"])
				}
			}
		})
	}
}
