package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seeds *service.SeedService
}

func NewSeedHandler(seeds *service.SeedService) *SeedHandler {
	return &SeedHandler{seeds: seeds}
}

// SeedAdmin ensures the default admin account exists
func (h *SeedHandler) SeedAdmin(c *gin.Context) {
	ctx := reqContext(c, "SeedAdmin")

	message, err := h.seeds.SeedAdmin(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// SeedServiceCategories resets the default service categories
func (h *SeedHandler) SeedServiceCategories(c *gin.Context) {
	ctx := reqContext(c, "SeedServiceCategories")

	count, err := h.seeds.SeedServiceCategories(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service categories seeded successfully",
		"count":   count,
	})
}

// SeedTeamMembers inserts the default team when none exist
func (h *SeedHandler) SeedTeamMembers(c *gin.Context) {
	ctx := reqContext(c, "SeedTeamMembers")

	count, err := h.seeds.SeedTeamMembers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team members seeded successfully",
		"count":   count,
	})
}

// SeedFormFields inserts the default contact form fields when none exist
func (h *SeedHandler) SeedFormFields(c *gin.Context) {
	ctx := reqContext(c, "SeedFormFields")

	count, err := h.seeds.SeedFormFields(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Form fields seeded successfully",
		"count":   count,
	})
}

// SeedSampleData populates demo content across all resources
func (h *SeedHandler) SeedSampleData(c *gin.Context) {
	ctx := reqContext(c, "SeedSampleData")

	if err := h.seeds.SeedSampleData(ctx); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sample data seeded successfully",
	})
}

// ClearSampleData removes seeded demo content
func (h *SeedHandler) ClearSampleData(c *gin.Context) {
	ctx := reqContext(c, "ClearSampleData")

	if err := h.seeds.ClearSampleData(ctx); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sample data cleared successfully",
	})
}
