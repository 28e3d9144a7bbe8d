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

// StudentController handles student CRUD, progress entries and internship
// assignment
type StudentController struct {
	studentService    *services.StudentService
	internshipService *services.InternshipService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, internshipService *services.InternshipService) *StudentController {
	return &StudentController{
		studentService:    studentService,
		internshipService: internshipService,
	}
}

// ListStudents returns one page of students, filtered and sorted
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filters := services.StudentFilters{
		Params: listParams(ctx),
		Branch: ctx.Query("branch"),
		Year:   services.ParseYearFilter(ctx.Query("year")),
	}

	students, pageInfo := c.studentService.ListStudents(filters)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ListResponse{Items: students, Pagination: pageInfo},
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves a single student. Student accounts may only read
// their own record; staff roles may read anyone's.
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if claims, ok := middleware.GetClaims(ctx); ok && claims.Role == models.RoleStudent {
		if claims.StudentID == nil || *claims.StudentID != id {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "Students can only view their own record")))
			return
		}
	}

	student, err := c.studentService.GetStudent(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// CreateStudent adds a new student record
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudent(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent replaces a student's editable fields
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted"},
		Timestamp: time.Now(),
	})
}

// AddProgress appends a progress entry to a student
func (c *StudentController) AddProgress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid progress data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.AddProgress(id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Progress entry added"},
		Timestamp: time.Now(),
	})
}

// AssignInternship sets or clears a student's internship assignment
func (c *StudentController) AssignInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.internshipService.AssignStudent(id, req.InternshipID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship assignment updated"},
		Timestamp: time.Now(),
	})
}
