package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/constants"
	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/middleware"
	"github.com/almaspay/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile returns the authenticated user's account
func (h *UserHandler) Profile(c *gin.Context) {
	ctx := reqContext(c, "Profile")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildAuthErrorResponse(
			"Access token required", constants.AuthCodeUnauthenticated))
		return
	}

	user, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}
