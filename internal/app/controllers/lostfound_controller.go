package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// LostFoundController handles lost & found endpoints
type LostFoundController struct {
	lostFoundService services.LostFoundService
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(lostFoundService services.LostFoundService) *LostFoundController {
	return &LostFoundController{lostFoundService: lostFoundService}
}

// ListItems returns all reports. Public.
func (c *LostFoundController) ListItems(ctx *gin.Context) {
	items, err := c.lostFoundService.ListItems(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// CreateItem reports a lost or found item.
func (c *LostFoundController) CreateItem(ctx *gin.Context) {
	var req dto.CreateLostFoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	item, err := c.lostFoundService.CreateItem(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// UpdateItem updates a report (typically marking it resolved). Reporter only.
func (c *LostFoundController) UpdateItem(ctx *gin.Context) {
	var req dto.UpdateLostFoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	item, err := c.lostFoundService.UpdateItem(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}
