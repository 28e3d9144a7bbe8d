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

// CRTSessionController handles CRT session CRUD and registrations
type CRTSessionController struct {
	sessionService *services.CRTSessionService
}

// NewCRTSessionController creates a new CRTSessionController
func NewCRTSessionController(sessionService *services.CRTSessionService) *CRTSessionController {
	return &CRTSessionController{sessionService: sessionService}
}

// ListSessions returns one page of CRT sessions
func (c *CRTSessionController) ListSessions(ctx *gin.Context) {
	filters := services.CRTSessionFilters{
		Params: listParams(ctx),
		Date:   ctx.Query("date"),
	}

	sessions, pageInfo := c.sessionService.ListSessions(filters)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ListResponse{Items: sessions, Pagination: pageInfo},
		Timestamp: time.Now(),
	})
}

// GetSession retrieves a single CRT session
func (c *CRTSessionController) GetSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSession(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// CreateSession adds a new CRT session with an empty registration set
func (c *CRTSessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateCRTSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.sessionService.CreateSession(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// UpdateSession replaces a session's details, keeping its registrations
func (c *CRTSessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCRTSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.sessionService.UpdateSession(id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// DeleteSession removes a CRT session
func (c *CRTSessionController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteSession(id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "CRT session deleted"},
		Timestamp: time.Now(),
	})
}

// resolveRegistrationTarget decides which student a registration request
// applies to. Students can only act on themselves; staff can act on anyone.
func resolveRegistrationTarget(ctx *gin.Context, requested int64) (int64, bool) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}
	if claims.Role != models.RoleStudent {
		return requested, true
	}
	if claims.StudentID == nil {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is not linked to a student record")))
		return 0, false
	}
	if requested != 0 && requested != *claims.StudentID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Students can only register themselves")))
		return 0, false
	}
	return *claims.StudentID, true
}

// Register adds a student to the session's registration set (idempotent)
func (c *CRTSessionController) Register(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Student accounts may omit the body; they can only mean themselves
		req.StudentID = 0
	}

	studentID, ok := resolveRegistrationTarget(ctx, req.StudentID)
	if !ok {
		return
	}

	if err := c.sessionService.Register(studentID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Registered for CRT session"},
		Timestamp: time.Now(),
	})
}

// Unregister removes a student from the session's registration set
func (c *CRTSessionController) Unregister(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req.StudentID = 0
	}

	studentID, ok := resolveRegistrationTarget(ctx, req.StudentID)
	if !ok {
		return
	}

	if err := c.sessionService.Unregister(studentID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Unregistered from CRT session"},
		Timestamp: time.Now(),
	})
}

// GetSessionStudents lists the students registered for a session
func (c *CRTSessionController) GetSessionStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.sessionService.StudentsForSession(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}
