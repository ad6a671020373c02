package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// MarketplaceController handles marketplace endpoints
type MarketplaceController struct {
	marketplaceService services.MarketplaceService
}

// NewMarketplaceController creates a new MarketplaceController
func NewMarketplaceController(marketplaceService services.MarketplaceService) *MarketplaceController {
	return &MarketplaceController{marketplaceService: marketplaceService}
}

// ListListings returns all listings. Public.
func (c *MarketplaceController) ListListings(ctx *gin.Context) {
	listings, err := c.marketplaceService.ListListings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listings)
}

// CreateListing creates a listing owned by the caller.
func (c *MarketplaceController) CreateListing(ctx *gin.Context) {
	var req dto.CreateListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	listing, err := c.marketplaceService.CreateListing(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listing)
}

// DeleteListing deletes a listing. Seller only.
func (c *MarketplaceController) DeleteListing(ctx *gin.Context) {
	if err := c.marketplaceService.DeleteListing(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Listing deleted"})
}
