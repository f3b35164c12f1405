package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type HomepageSectionHandler struct {
	sections *service.HomepageSectionService
}

func NewHomepageSectionHandler(sections *service.HomepageSectionService) *HomepageSectionHandler {
	return &HomepageSectionHandler{sections: sections}
}

// List returns active sections for the public homepage
func (h *HomepageSectionHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListHomepageSections")

	sections, err := h.sections.List(ctx, true, c.Query("sectionType"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sections": sections,
		"count":    len(sections),
	})
}

// ListAdmin returns every section including inactive ones
func (h *HomepageSectionHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListHomepageSectionsAdmin")

	sections, err := h.sections.List(ctx, false, c.Query("sectionType"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sections": sections,
		"count":    len(sections),
	})
}

func (h *HomepageSectionHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetHomepageSection")

	id, ok := idParam(c)
	if !ok {
		return
	}

	section, err := h.sections.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"section": section,
	})
}

func (h *HomepageSectionHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateHomepageSection")

	var req dto.CreateHomepageSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid homepage section payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	section, err := h.sections.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"section": section,
	})
}

func (h *HomepageSectionHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateHomepageSection")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateHomepageSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	section, err := h.sections.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"section": section,
	})
}

func (h *HomepageSectionHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteHomepageSection")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.sections.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Homepage section deleted successfully",
	})
}
