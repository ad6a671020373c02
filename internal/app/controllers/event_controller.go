package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// EventController handles campus event endpoints
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents returns all events. Public.
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// CreateEvent creates an event with the caller as creator and first attendee.
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// JoinEvent adds the caller to an event's attendees. Idempotent.
func (c *EventController) JoinEvent(ctx *gin.Context) {
	event, err := c.eventService.JoinEvent(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}
