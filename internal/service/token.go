package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/almaspay/backend/config"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
)

// TokenClaims is the verified identity carried by a token
type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
}

// TokenService issues and verifies the two token families. Access and
// refresh tokens are signed with separate secrets, so a token minted for one
// purpose never verifies for the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.JWT.AccessSecret),
		refreshSecret: []byte(cfg.JWT.RefreshSecret),
		accessTTL:     cfg.JWT.AccessTTL,
		refreshTTL:    cfg.JWT.RefreshTTL,
	}
}

// AccessTTL returns the configured access token lifetime
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// IssueAccessToken mints a short-lived access token for the user
func (s *TokenService) IssueAccessToken(user *model.User) (string, error) {
	return s.sign(user, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token for the user
func (s *TokenService) IssueRefreshToken(user *model.User) (string, error) {
	return s.sign(user, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) sign(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccess validates an access token and extracts its claims
func (s *TokenService) VerifyAccess(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefresh validates a refresh token and extracts its claims
func (s *TokenService) VerifyRefresh(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.refreshSecret)
}

// verify distinguishes expiry from every other failure so callers can tell
// clients whether to refresh or re-authenticate.
func (s *TokenService) verify(tokenString string, secret []byte) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userID, ok := extractUserID(claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	tc := &TokenClaims{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		tc.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		tc.Role = role
	}
	return tc, nil
}

// extractUserID reads the subject from `id`, falling back to the legacy
// `userId` key still present in older tokens.
func extractUserID(claims jwt.MapClaims) (uint, bool) {
	for _, key := range []string{"id", "userId"} {
		if raw, exists := claims[key]; exists {
			switch v := raw.(type) {
			case float64:
				if v > 0 {
					return uint(v), true
				}
			case int:
				if v > 0 {
					return uint(v), true
				}
			case uint:
				if v > 0 {
					return v, true
				}
			}
		}
	}
	return 0, false
}
