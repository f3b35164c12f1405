package handler

import (
	"net/http"
	"time"

	"github.com/almaspay/backend/internal/constants"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"service":   constants.AppName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
