package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterMedicalRecordRoutes(r gin.IRouter) {
	records := r.Group("/medicalRecords")
	records.Use(middleware.AuthMiddleware())
	{
		records.POST("/", middleware.AllowTo(models.RoleDoctor), handlers.CreateMedicalRecord)
		records.GET("/", middleware.AllowTo(models.RoleAdmin), handlers.GetAllMedicalRecords)
		records.GET("/my", middleware.AllowTo(models.RolePatient), handlers.GetMyMedicalRecords)
		records.GET("/patient/:patientId", middleware.AllowTo(models.RoleDoctor), handlers.GetPatientMedicalRecords)
		records.GET("/:id", handlers.GetMedicalRecord)
	}
}
