package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	services *service.ServiceService
}

func NewServiceHandler(services *service.ServiceService) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) serviceFilter(c *gin.Context) repository.ServiceFilter {
	return repository.ServiceFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Featured: boolQuery(c, "featured"),
	}
}

// List returns the public set of active services
func (h *ServiceHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListServices")

	services, err := h.services.List(ctx, true, h.serviceFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": services,
		"count":    len(services),
	})
}

// ListAdmin returns every service regardless of isActive
func (h *ServiceHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListServicesAdmin")

	services, err := h.services.List(ctx, false, h.serviceFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": services,
		"count":    len(services),
	})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetService")

	id, ok := idParam(c)
	if !ok {
		return
	}

	svc, err := h.services.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": svc,
	})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateService")

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid service payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	svc, err := h.services.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"service": svc,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateService")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	svc, err := h.services.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": svc,
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteService")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted successfully",
	})
}
