package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.GET("/doctors", handlers.GetAllDoctors)

	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handlers.GetMe)
		users.PATCH("/updateMe", handlers.UpdateMe)
		users.PATCH("/workingHours", middleware.AllowTo(models.RoleDoctor), handlers.UpdateWorkingHours)
		users.PATCH("/changeMyPassword", handlers.ChangeMyPassword)
		users.POST("/uploadImage", handlers.UploadUserImage)
		users.POST("/medicalDocuments", handlers.UploadMedicalDocuments)
		users.GET("/medicalDocuments", handlers.GetMedicalDocuments)

		// Admin
		users.GET("/", middleware.AllowTo(models.RoleAdmin), handlers.GetAllUsers)
		users.GET("/:id", middleware.AllowTo(models.RoleAdmin), handlers.GetUser)
		users.DELETE("/:id", middleware.AllowTo(models.RoleAdmin), handlers.DeleteUser)
	}
}
