package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterAppointmentRoutes(r gin.IRouter) {
	appointments := r.Group("/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.POST("/", middleware.AllowTo(models.RolePatient), handlers.CreateAppointment)
		appointments.GET("/", handlers.GetAllAppointments)
		appointments.GET("/availability", handlers.GetDoctorAvailability)
		appointments.GET("/:id", handlers.GetAppointmentByID)
		appointments.PATCH("/:id/cancel", handlers.CancelAppointment)
		appointments.PATCH("/:id/confirm", middleware.AllowTo(models.RoleDoctor), handlers.ConfirmAppointment)
		appointments.PATCH("/:id/complete", middleware.AllowTo(models.RoleDoctor), handlers.CompleteAppointment)
		appointments.POST("/:id/files", handlers.UploadAppointmentFiles)
	}
}
