package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/svit/internhub/internal/app/controllers"
	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/middleware"
)

// SetupRouter configures all application routes. Role gating mirrors the
// portal screens: admins manage everything, faculty manage progress and CRT
// sessions, students read and register themselves.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	internshipController *controllers.InternshipController,
	sessionController *controllers.CRTSessionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/me", authController.Me)

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)

		studentsStaff := students.Group("")
		studentsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
		{
			studentsStaff.POST("/:id/progress", studentController.AddProgress)
			studentsStaff.PUT("/:id/internship", studentController.AssignInternship)
		}

		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	internships := authenticated.Group("/internships")
	{
		internships.GET("", internshipController.ListInternships)
		internships.GET("/:id", internshipController.GetInternship)
		internships.GET("/:id/students", internshipController.GetInternshipStudents)

		internshipsAdmin := internships.Group("")
		internshipsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			internshipsAdmin.POST("", internshipController.CreateInternship)
			internshipsAdmin.PUT("/:id", internshipController.UpdateInternship)
			internshipsAdmin.DELETE("/:id", internshipController.DeleteInternship)
		}
	}

	sessions := authenticated.Group("/crt-sessions")
	{
		sessions.GET("", sessionController.ListSessions)
		sessions.GET("/:id", sessionController.GetSession)
		sessions.GET("/:id/students", sessionController.GetSessionStudents)
		sessions.POST("/:id/register", sessionController.Register)
		sessions.POST("/:id/unregister", sessionController.Unregister)

		sessionsStaff := sessions.Group("")
		sessionsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
		{
			sessionsStaff.POST("", sessionController.CreateSession)
			sessionsStaff.PUT("/:id", sessionController.UpdateSession)
			sessionsStaff.DELETE("/:id", sessionController.DeleteSession)
		}
	}
}
