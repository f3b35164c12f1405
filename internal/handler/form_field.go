package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type FormFieldHandler struct {
	fields *service.FormFieldService
}

func NewFormFieldHandler(fields *service.FormFieldService) *FormFieldHandler {
	return &FormFieldHandler{fields: fields}
}

// List returns active form fields for the public contact form
func (h *FormFieldHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListFormFields")

	fields, err := h.fields.List(ctx, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fields":  fields,
		"count":   len(fields),
	})
}

// ListAdmin returns every form field including inactive ones
func (h *FormFieldHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListFormFieldsAdmin")

	fields, err := h.fields.List(ctx, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fields":  fields,
		"count":   len(fields),
	})
}

func (h *FormFieldHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetFormField")

	id, ok := idParam(c)
	if !ok {
		return
	}

	field, err := h.fields.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"field":   field,
	})
}

func (h *FormFieldHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateFormField")

	var req dto.CreateFormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid form field payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	field, err := h.fields.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"field":   field,
	})
}

func (h *FormFieldHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateFormField")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	field, err := h.fields.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"field":   field,
	})
}

func (h *FormFieldHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteFormField")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.fields.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Form field deleted successfully",
	})
}

// Reorder applies an explicit ID ordering
func (h *FormFieldHandler) Reorder(c *gin.Context) {
	ctx := reqContext(c, "ReorderFormFields")

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields, err := h.fields.Reorder(ctx, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Form fields reordered successfully",
		"fields":  fields,
	})
}
