package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/almaspay/backend/internal/constants"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTMiddleware gates routes behind bearer-token authentication
type JWTMiddleware struct {
	tokens *service.TokenService
}

func NewJWTMiddleware(tokens *service.TokenService) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

// RequireAuth verifies the access token and stores the caller's identity in
// the request context. Verification is pure computation: a valid signature
// plus an unexpired exp is the whole proof, no user lookup happens here.
//
// Failure codes let clients pick the right recovery: UNAUTHENTICATED means
// attach a token, TOKEN_EXPIRED means refresh, INVALID_TOKEN means log in
// again.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, constants.BuildAuthErrorResponse(
				"Access token required", constants.AuthCodeUnauthenticated))
			c.Abort()
			return
		}

		claims, err := m.tokens.VerifyAccess(token)
		if err != nil {
			code := constants.AuthCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = constants.AuthCodeTokenExpired
				message = "Token expired"
			}

			logger.GetLogger().Debug("Token verification failed",
				zap.String("client_ip", c.ClientIP()),
				zap.String("code", code),
			)

			c.JSON(http.StatusUnauthorized, constants.BuildAuthErrorResponse(message, code))
			c.Abort()
			return
		}

		c.Set(constants.GinKeyUserID, claims.UserID)
		c.Set(constants.GinKeyUserEmail, claims.Email)
		c.Set(constants.GinKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after RequireAuth.
func (m *JWTMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.GinKeyUserRole)
		if role != constants.RoleAdmin {
			c.JSON(http.StatusForbidden,
				constants.BuildErrorResponse(constants.MsgForbidden, nil))
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.BearerScheme) {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// CurrentUserID reads the authenticated user's ID set by RequireAuth
func CurrentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(constants.GinKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
