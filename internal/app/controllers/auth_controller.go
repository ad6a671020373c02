package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// AuthController handles identity operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Signup handles account creation
// @Summary Create an account
// @Description Creates a new user with an initial profile. Public endpoint.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup payload"
// @Success 200 {object} dto.SignupResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(signupBindingMessage(err)))
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// signupBindingMessage turns validator failures into the messages clients
// display on the signup form.
func signupBindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return "Email, password, and full name are required"
		case fe.Field() == "Email":
			return "Invalid email address format"
		case fe.Field() == "Password":
			return "Password must be at least 6 characters"
		}
	}
	return "Invalid request body"
}

// Login handles token issuance
// @Summary Log in
// @Description Verifies credentials and returns a bearer token with the user's profile. Public endpoint.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated caller's profile
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	profile, err := c.authService.Me(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
