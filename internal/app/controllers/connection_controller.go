package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// ConnectionController handles the social-graph endpoints
type ConnectionController struct {
	connectionService services.ConnectionService
}

// NewConnectionController creates a new ConnectionController
func NewConnectionController(connectionService services.ConnectionService) *ConnectionController {
	return &ConnectionController{
		connectionService: connectionService,
	}
}

// GetConnections returns the caller's graph state.
// @Summary Get connection state
// @Description Accepted connections hydrated as profiles, plus raw pending and received id lists.
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ConnectionsResponse
// @Router /connections [get]
func (c *ConnectionController) GetConnections(ctx *gin.Context) {
	state, err := c.connectionService.GetState(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// SendRequest sends a connection request to another user.
// @Summary Send connection request
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConnectionRequestPayload true "Target user"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Self request"
// @Failure 404 {object} dto.ErrorResponse "Target unknown"
// @Failure 409 {object} dto.ErrorResponse "Already connected"
// @Router /connections/request [post]
func (c *ConnectionController) SendRequest(ctx *gin.Context) {
	var req dto.ConnectionRequestPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.connectionService.SendRequest(ctx.Request.Context(), middleware.UserID(ctx), req.TargetUserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Connection request sent"})
}

// AcceptRequest accepts a received connection request.
// @Summary Accept connection request
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConnectionDecisionPayload true "Requester"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No such pending request"
// @Router /connections/accept [post]
func (c *ConnectionController) AcceptRequest(ctx *gin.Context) {
	var req dto.ConnectionDecisionPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.connectionService.AcceptRequest(ctx.Request.Context(), middleware.UserID(ctx), req.RequesterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Connection accepted"})
}

// RejectRequest rejects a received connection request.
// @Summary Reject connection request
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConnectionDecisionPayload true "Requester"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No such pending request"
// @Router /connections/reject [post]
func (c *ConnectionController) RejectRequest(ctx *gin.Context) {
	var req dto.ConnectionDecisionPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.connectionService.RejectRequest(ctx.Request.Context(), middleware.UserID(ctx), req.RequesterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Connection rejected"})
}

// RemoveConnection removes a mutual connection.
// @Summary Remove connection
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user id"
// @Success 200 {object} dto.MessageResponse
// @Router /connections/{userId} [delete]
func (c *ConnectionController) RemoveConnection(ctx *gin.Context) {
	otherID := ctx.Param("userId")

	if err := c.connectionService.RemoveConnection(ctx.Request.Context(), middleware.UserID(ctx), otherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Connection removed"})
}
