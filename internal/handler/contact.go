package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Intake accepts a contact form submission from the public site
func (h *ContactHandler) Intake(c *gin.Context) {
	ctx := reqContext(c, "ContactIntake")

	var req dto.ContactIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid contact submission payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	submission, err := h.contacts.Intake(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Contact form submitted successfully",
		"submissionId": submission.ID,
		"submission":   submission,
	})
}

// List returns contact submissions filtered by status, urgency and priority
func (h *ContactHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListContactSubmissions")

	submissions, err := h.contacts.List(ctx, repository.ContactFilter{
		Status:   c.Query("status"),
		Urgency:  c.Query("urgency"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"count":       len(submissions),
	})
}

func (h *ContactHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetContactSubmission")

	id, ok := idParam(c)
	if !ok {
		return
	}

	submission, err := h.contacts.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// Stats returns aggregate counts for the admin dashboard
func (h *ContactHandler) Stats(c *gin.Context) {
	ctx := reqContext(c, "ContactStats")

	stats, err := h.contacts.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func (h *ContactHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateContactSubmission")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateContactSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	submission, err := h.contacts.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteContactSubmission")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.contacts.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact submission deleted successfully",
	})
}
