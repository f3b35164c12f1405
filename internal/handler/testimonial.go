package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// ListActive returns active testimonials for the public site
func (h *TestimonialHandler) ListActive(c *gin.Context) {
	ctx := reqContext(c, "ListActiveTestimonials")

	testimonials, err := h.testimonials.List(ctx, true, repository.TestimonialFilter{
		Featured: boolQuery(c, "featured"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

// List returns every testimonial for admin management
func (h *TestimonialHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListTestimonials")

	testimonials, err := h.testimonials.List(ctx, false, repository.TestimonialFilter{
		Featured: boolQuery(c, "featured"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetTestimonial")

	id, ok := idParam(c)
	if !ok {
		return
	}

	testimonial, err := h.testimonials.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"testimonial": testimonial,
	})
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateTestimonial")

	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid testimonial payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	testimonial, err := h.testimonials.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"testimonial": testimonial,
	})
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateTestimonial")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	testimonial, err := h.testimonials.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"testimonial": testimonial,
	})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteTestimonial")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.testimonials.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial deleted successfully",
	})
}
