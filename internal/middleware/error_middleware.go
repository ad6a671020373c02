package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps domain errors to HTTP responses at the handler
// boundary. Every failure becomes a {"error": message} body with the status
// from the taxonomy: 401 unauthorized, 404 not found, 403 forbidden,
// 409/400 conflict, 400 validation, 500 everything else.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("A user with this email address has already been registered"))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User profile not found"))
	case errors.Is(err, apperrors.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Event not found"))
	case errors.Is(err, apperrors.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Group not found"))
	case errors.Is(err, apperrors.ErrListingNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Listing not found"))
	case errors.Is(err, apperrors.ErrItemNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Item not found"))
	case errors.Is(err, apperrors.ErrRideNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Ride not found"))
	case errors.Is(err, apperrors.ErrResourceMissing):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Connection request not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(forbiddenMessage(err)))

	case errors.Is(err, apperrors.ErrGroupFull):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Group is full"))
	case errors.Is(err, apperrors.ErrAlreadyConnected):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Users are already connected"))
	case errors.Is(err, apperrors.ErrWriteConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("The record was modified concurrently, please retry"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrRideFull):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Ride is full"))
	case errors.Is(err, apperrors.ErrSelfConnection):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("You cannot send a connection request to yourself"))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// forbiddenMessage surfaces the service's own wording when the error came
// through apperrors.NewForbiddenError.
func forbiddenMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return "Forbidden"
}

// HandleBindingError converts a request-binding failure into the standard
// 400 response.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingMessage(err)))
}

func bindingMessage(err error) string {
	if err == nil {
		return "Invalid request body"
	}
	return err.Error()
}
