package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterSpecialtyRoutes(r gin.IRouter) {
	specialties := r.Group("/specialties")
	specialties.GET("/", handlers.GetAllSpecialties)
	specialties.GET("/:id", handlers.GetSpecialty)

	admin := specialties.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AllowTo(models.RoleAdmin))
	{
		admin.POST("/", handlers.CreateSpecialty)
		admin.PUT("/:id", handlers.UpdateSpecialty)
		admin.DELETE("/:id", handlers.DeleteSpecialty)
	}
}
