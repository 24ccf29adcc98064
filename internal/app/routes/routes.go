package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-center/praktika-backend/internal/app/controllers"
	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	directoryController *controllers.DirectoryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group. Authenticate resolves the identity when a token is
	// present; RequireRole guards each group below.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.Authenticate())

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/telegram", authController.LoginWithTelegram)
	}

	// Directory listings are public so the registration form can populate
	// its dropdowns before the student has a record.
	v1.GET("/facilities", directoryController.ListFacilities)
	v1.GET("/apprenticeship-types", directoryController.ListApprenticeshipTypes)

	// --- Student routes (any verified identity) ---
	studentProtected := v1.Group("")
	studentProtected.Use(authMiddleware.RequireRole(models.RoleStudent))
	{
		studentProtected.POST("/students", studentController.Register)
		studentProtected.GET("/students/me", studentController.GetMyStatus)
		studentProtected.POST("/students/me/report", studentController.SubmitReport)
	}

	// --- Curator routes ---
	curatorProtected := v1.Group("")
	curatorProtected.Use(authMiddleware.RequireRole(models.RoleCurator))
	{
		curatorProtected.GET("/students/mine", studentController.ListMyStudents)
	}

	// --- Administrator routes ---
	adminProtected := v1.Group("")
	adminProtected.Use(authMiddleware.RequireRole(models.RoleAdministrator))
	{
		students := adminProtected.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("/:telegramId/confirm", studentController.ConfirmStudent)
			students.PUT("/:telegramId/curator", studentController.AssignCurator)
			students.DELETE("/:telegramId/curator", studentController.UnassignCurator)
			students.POST("/:telegramId/sign-referral", studentController.SignReferral)
			students.POST("/:telegramId/sign-report", studentController.SignReport)
			students.PUT("/:telegramId", studentController.UpdateStudent)
			students.DELETE("/:telegramId", studentController.DeleteStudent)
		}

		curators := adminProtected.Group("/curators")
		{
			curators.POST("", directoryController.CreateCurator)
			curators.GET("", directoryController.ListCurators)
			curators.DELETE("/:telegramId", directoryController.DeleteCurator)
		}

		adminProtected.POST("/facilities", directoryController.CreateFacility)
		adminProtected.DELETE("/facilities/:name", directoryController.DeleteFacility)

		adminProtected.POST("/apprenticeship-types", directoryController.CreateApprenticeshipType)
		adminProtected.DELETE("/apprenticeship-types/:name", directoryController.DeleteApprenticeshipType)
	}
}
