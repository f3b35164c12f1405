package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ServiceCategoryHandler struct {
	categories *service.ServiceCategoryService
}

func NewServiceCategoryHandler(categories *service.ServiceCategoryService) *ServiceCategoryHandler {
	return &ServiceCategoryHandler{categories: categories}
}

// List returns active categories for the public site
func (h *ServiceCategoryHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListServiceCategories")

	categories, err := h.categories.List(ctx, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
		"count":      len(categories),
	})
}

// ListAdmin returns every category including inactive ones
func (h *ServiceCategoryHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListServiceCategoriesAdmin")

	categories, err := h.categories.List(ctx, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
		"count":      len(categories),
	})
}

func (h *ServiceCategoryHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetServiceCategory")

	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.categories.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
	})
}

func (h *ServiceCategoryHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateServiceCategory")

	var req dto.CreateServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid category payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	category, err := h.categories.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"category": category,
	})
}

func (h *ServiceCategoryHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateServiceCategory")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categories.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
	})
}

func (h *ServiceCategoryHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteServiceCategory")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service category deleted successfully",
	})
}

// Reorder applies an explicit ID ordering
func (h *ServiceCategoryHandler) Reorder(c *gin.Context) {
	ctx := reqContext(c, "ReorderServiceCategories")

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	categories, err := h.categories.Reorder(ctx, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Service categories reordered successfully",
		"categories": categories,
	})
}
