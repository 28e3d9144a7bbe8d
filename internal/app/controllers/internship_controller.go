package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/app/services"
	"github.com/svit/internhub/internal/middleware"
)

// InternshipController handles internship CRUD and the assigned-students view
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// ListInternships returns one page of internships with occupancy counts
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	filters := services.InternshipFilters{
		Params: listParams(ctx),
		Status: models.InternshipStatus(ctx.Query("status")),
	}

	internships, pageInfo := c.internshipService.ListInternships(filters)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ListResponse{Items: internships, Pagination: pageInfo},
		Timestamp: time.Now(),
	})
}

// GetInternship retrieves a single internship
func (c *InternshipController) GetInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetInternship(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// CreateInternship adds a new internship; status starts as Active
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.CreateInternship(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// UpdateInternship replaces an internship record
func (c *InternshipController) UpdateInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.UpdateInternship(id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// DeleteInternship removes an internship, unassigning its students
func (c *InternshipController) DeleteInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.internshipService.DeleteInternship(id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship deleted"},
		Timestamp: time.Now(),
	})
}

// GetInternshipStudents lists the students assigned to an internship
func (c *InternshipController) GetInternshipStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.internshipService.StudentsForInternship(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}
