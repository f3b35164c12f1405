package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/almaspay/backend/config"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
)

func newTestTokenService() *TokenService {
	return NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    7 * 24 * time.Hour,
		},
	})
}

func testUser() *model.User {
	u := &model.User{
		Email: "admin@example.com",
		Role:  "admin",
	}
	u.ID = 42
	return u
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService()
	user := testUser()

	tests := []struct {
		name   string
		issue  func(*model.User) (string, error)
		verify func(string) (*TokenClaims, error)
	}{
		{
			name:   "Access token",
			issue:  svc.IssueAccessToken,
			verify: svc.VerifyAccess,
		},
		{
			name:   "Refresh token",
			issue:  svc.IssueRefreshToken,
			verify: svc.VerifyRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.issue(user)
			if err != nil {
				t.Fatalf("Failed to issue token: %v", err)
			}

			claims, err := tt.verify(token)
			if err != nil {
				t.Fatalf("Failed to verify token: %v", err)
			}

			if claims.UserID != user.ID {
				t.Errorf("Expected user ID %d, got %d", user.ID, claims.UserID)
			}
			if claims.Email != user.Email {
				t.Errorf("Expected email %s, got %s", user.Email, claims.Email)
			}
			if claims.Role != user.Role {
				t.Errorf("Expected role %s, got %s", user.Role, claims.Role)
			}
		})
	}
}

func TestTokenSecretsAreSeparate(t *testing.T) {
	svc := newTestTokenService()
	user := testUser()

	access, err := svc.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("Failed to issue access token: %v", err)
	}
	refresh, err := svc.IssueRefreshToken(user)
	if err != nil {
		t.Fatalf("Failed to issue refresh token: %v", err)
	}

	if _, err := svc.VerifyRefresh(access); err == nil {
		t.Error("Access token verified as refresh token")
	}
	if _, err := svc.VerifyAccess(refresh); err == nil {
		t.Error("Refresh token verified as access token")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessTTL:     -time.Minute,
			RefreshTTL:    time.Hour,
		},
	})

	token, err := svc.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	_, err = svc.VerifyAccess(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyInvalidToken(t *testing.T) {
	svc := newTestTokenService()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Garbage string",
			token: "not-a-token",
		},
		{
			name:  "Empty string",
			token: "",
		},
		{
			name:  "Tampered signature",
			token: mustSign(t, "wrong-secret"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if errors.Is(err, apperrors.ErrTokenExpired) {
				t.Error("Invalid token reported as expired")
			}

			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("Expected a domain error, got %v", err)
			}
			if domainErr.Code != "INVALID_TOKEN" {
				t.Errorf("Expected code INVALID_TOKEN, got %s", domainErr.Code)
			}
		})
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  1,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected uint
		ok       bool
	}{
		{
			name:     "Standard id claim",
			claims:   jwt.MapClaims{"id": float64(7)},
			expected: 7,
			ok:       true,
		},
		{
			name:     "Legacy userId claim",
			claims:   jwt.MapClaims{"userId": float64(12)},
			expected: 12,
			ok:       true,
		},
		{
			name:     "id preferred over userId",
			claims:   jwt.MapClaims{"id": float64(3), "userId": float64(9)},
			expected: 3,
			ok:       true,
		},
		{
			name:   "Zero id rejected",
			claims: jwt.MapClaims{"id": float64(0)},
			ok:     false,
		},
		{
			name:   "Missing subject",
			claims: jwt.MapClaims{"email": "x@y.z"},
			ok:     false,
		},
		{
			name:   "Non-numeric id",
			claims: jwt.MapClaims{"id": "7"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := extractUserID(tt.claims)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && id != tt.expected {
				t.Errorf("Expected id %d, got %d", tt.expected, id)
			}
		})
	}
}
