package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ersoy/studentms/internal/app/controllers"
	"github.com/ersoy/studentms/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/count", studentController.GetStudentCount)
		students.GET("/statistics", studentController.GetStatistics)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)

		search := students.Group("/search")
		{
			search.GET("/first-name/:name", studentController.SearchByFirstName)
			search.GET("/last-name/:name", studentController.SearchByLastName)
			search.GET("/email", studentController.FindByEmail)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
