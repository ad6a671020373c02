package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// RideController handles ride sharing endpoints
type RideController struct {
	rideService services.RideService
}

// NewRideController creates a new RideController
func NewRideController(rideService services.RideService) *RideController {
	return &RideController{rideService: rideService}
}

// ListRides returns all rides. Public.
func (c *RideController) ListRides(ctx *gin.Context) {
	rides, err := c.rideService.ListRides(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rides)
}

// CreateRide offers a new ride with the caller as driver.
func (c *RideController) CreateRide(ctx *gin.Context) {
	var req dto.CreateRideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ride, err := c.rideService.CreateRide(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ride)
}

// RequestSeat books the caller onto a ride. Idempotent for existing
// passengers; a full ride yields 400 "Ride is full".
func (c *RideController) RequestSeat(ctx *gin.Context) {
	ride, err := c.rideService.RequestSeat(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ride)
}
