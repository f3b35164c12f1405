package handler

import (
	"net/http"

	"github.com/almaspay/backend/internal/dto"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type TeamMemberHandler struct {
	members *service.TeamMemberService
}

func NewTeamMemberHandler(members *service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{members: members}
}

// List returns active team members for the public site
func (h *TeamMemberHandler) List(c *gin.Context) {
	ctx := reqContext(c, "ListTeamMembers")

	members, err := h.members.List(ctx, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"teamMembers": members,
		"count":       len(members),
	})
}

// ListAdmin returns every team member including inactive ones
func (h *TeamMemberHandler) ListAdmin(c *gin.Context) {
	ctx := reqContext(c, "ListTeamMembersAdmin")

	members, err := h.members.List(ctx, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"teamMembers": members,
		"count":       len(members),
	})
}

func (h *TeamMemberHandler) Get(c *gin.Context) {
	ctx := reqContext(c, "GetTeamMember")

	id, ok := idParam(c)
	if !ok {
		return
	}

	member, err := h.members.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"teamMember": member,
	})
}

func (h *TeamMemberHandler) Create(c *gin.Context) {
	ctx := reqContext(c, "CreateTeamMember")

	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid team member payload").
			Err(err).
			Log()
		respondBindError(c, err)
		return
	}

	member, err := h.members.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"teamMember": member,
	})
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	ctx := reqContext(c, "UpdateTeamMember")

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.members.Update(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"teamMember": member,
	})
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	ctx := reqContext(c, "DeleteTeamMember")

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.members.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team member deleted successfully",
	})
}

// Reorder applies an explicit ID ordering
func (h *TeamMemberHandler) Reorder(c *gin.Context) {
	ctx := reqContext(c, "ReorderTeamMembers")

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	members, err := h.members.Reorder(ctx, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Team members reordered successfully",
		"teamMembers": members,
	})
}
