package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CaseStudyHandler struct {
	studies *service.CaseStudyService
}

func NewCaseStudyHandler(studies *service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{studies: studies}
}

func (h *CaseStudyHandler) caseStudyFilter(c *gin.Context) repository.CaseStudyFilter {
	return repository.CaseStudyFilter{
		Status:   c.Query("status"),
		Industry: c.Query("industry"),
		Featured: boolQuery(c, "featured"),
	}
}

// List returns published case studies for the public work page
func (h *CaseStudyHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListCaseStudies")

	studies, err := h.studies.List(ctx, true, repository.CaseStudyFilter{
		Industry: c.Query("industry"),
		Featured: boolQuery(c, "featured"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"caseStudies": studies,
		"count":       len(studies),
	})
}

// ListAdmin returns every case study regardless of status
func (h *CaseStudyHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListCaseStudiesAdmin")

	studies, err := h.studies.List(ctx, false, h.caseStudyFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"caseStudies": studies,
		"count":       len(studies),
	})
}

func (h *CaseStudyHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetCaseStudy")

	id, ok := idParam(c)
	if !ok {
		return
	}

	study, err := h.studies.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"caseStudy": study,
	})
}

func (h *CaseStudyHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateCaseStudy")

	var req dto.CreateCaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid case study payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	study, err := h.studies.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"caseStudy": study,
	})
}

func (h *CaseStudyHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateCaseStudy")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	study, err := h.studies.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"caseStudy": study,
	})
}

func (h *CaseStudyHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteCaseStudy")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.studies.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Case study deleted successfully",
	})
}
