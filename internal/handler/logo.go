package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/middleware"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type LogoHandler struct {
	logos *service.LogoService
}

func NewLogoHandler(logos *service.LogoService) *LogoHandler {
	return &LogoHandler{logos: logos}
}

// List returns active logos for public consumption
func (h *LogoHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListLogos")

	logos, err := h.logos.List(ctx, true, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logos":   logos,
		"count":   len(logos),
	})
}

// ListAdmin returns every logo including inactive ones
func (h *LogoHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListLogosAdmin")

	logos, err := h.logos.List(ctx, false, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logos":   logos,
		"count":   len(logos),
	})
}

// GetDefault returns the default logo for a category
func (h *LogoHandler) GetDefault(c *gin.Context) {
	ctx := reqContext(c, "GetDefaultLogo")

	logo, err := h.logos.GetDefault(ctx, c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logo":    logo,
	})
}

func (h *LogoHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetLogo")

	id, ok := idParam(c)
	if !ok {
		return
	}

	logo, err := h.logos.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logo":    logo,
	})
}

func (h *LogoHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateLogo")

	var req dto.CreateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid logo payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	uploadedBy, _ := middleware.CurrentUserID(c)

	logo, err := h.logos.Create(ctx, &req, uploadedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"logo":    logo,
	})
}

func (h *LogoHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateLogo")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logo, err := h.logos.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logo":    logo,
	})
}

// SetDefault promotes a logo to the default for its category
func (h *LogoHandler) SetDefault(c *gin.Context) {
	ctx := reqContext(c, "SetDefaultLogo")

	id, ok := idParam(c)
	if !ok {
		return
	}

	logo, err := h.logos.SetDefault(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Default logo updated successfully",
		"logo":    logo,
	})
}

func (h *LogoHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteLogo")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.logos.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logo deleted successfully",
	})
}
