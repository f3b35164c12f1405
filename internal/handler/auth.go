package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := reqContext(c, "Register")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid register request").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	user, accessToken, err := h.userService.Register(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "User registered successfully",
		"user":        dto.NewUserResponse(user),
		"accessToken": accessToken,
	})
}

// Login authenticates a user and issues tokens
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := reqContext(c, "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid login request").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	user, accessToken, refreshToken, err := h.userService.Login(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login successful",
		"user":         dto.NewUserResponse(user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Refresh exchanges a refresh token for a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := reqContext(c, "Refresh")

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	accessToken, err := h.userService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": accessToken,
	})
}

// Logout acknowledges the logout. Tokens are stateless, so the client simply
// discards them; there is no server-side session to tear down.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
