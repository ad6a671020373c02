package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/services"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// ExamController handles shared exam resource endpoints
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ListResources godoc
// @Summary List exam resources
// @Description Returns every shared exam resource
// @Tags exam-resources
// @Produce json
// @Success 200 {array} models.ExamResource
// @Router /exam-resources [get]
func (c *ExamController) ListResources(ctx *gin.Context) {
	resources, err := c.examService.ListResources(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources)
}

// CreateResource godoc
// @Summary Share an exam resource
// @Description Uploads resource metadata on behalf of the authenticated user
// @Tags exam-resources
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Resource details"
// @Success 200 {object} models.ExamResource
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exam-resources [post]
func (c *ExamController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resource, err := c.examService.CreateResource(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// RecordDownload bumps the download counter and returns the updated resource.
func (c *ExamController) RecordDownload(ctx *gin.Context) {
	resource, err := c.examService.RecordDownload(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// MarkHelpful bumps the helpful counter and returns the updated resource.
func (c *ExamController) MarkHelpful(ctx *gin.Context) {
	resource, err := c.examService.MarkHelpful(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// DeleteResource removes a resource. Uploader only.
func (c *ExamController) DeleteResource(ctx *gin.Context) {
	if err := c.examService.DeleteResource(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resource deleted"})
}

// Recommendations godoc
// @Summary Recommend exam resources
// @Description Scores resources against the caller's profile and returns the best matches
// @Tags exam-resources
// @Produce json
// @Success 200 {array} recommend.ScoredResource
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exam-resources/recommendations [get]
func (c *ExamController) Recommendations(ctx *gin.Context) {
	scored, err := c.examService.Recommendations(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scored)
}
