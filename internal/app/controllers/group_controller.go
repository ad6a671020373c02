package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// GroupController handles study group endpoints
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// ListGroups returns all study groups. Public.
func (c *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := c.groupService.ListGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup creates a study group with the caller as its first member.
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group, err := c.groupService.CreateGroup(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// JoinGroup adds the caller to a group. Idempotent; rejected at capacity.
// @Summary Join a study group
// @Tags study-groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group id"
// @Success 200 {object} models.StudyGroup
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Group is full"
// @Router /study-groups/{id}/join [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	group, err := c.groupService.JoinGroup(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// Recommendations returns ranked joinable groups for the caller.
// @Summary Study group recommendations
// @Description Groups the caller could join, ranked by connection, university, department, skill, popularity, and recency affinity.
// @Tags study-groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} recommend.ScoredGroup
// @Router /study-groups/recommendations [get]
func (c *GroupController) Recommendations(ctx *gin.Context) {
	scored, err := c.groupService.Recommendations(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scored)
}
