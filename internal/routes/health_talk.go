package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterHealthTalkRoutes(r gin.IRouter) {
	talks := r.Group("/healthTalks")
	talks.GET("/", handlers.GetAllHealthTalks)
	talks.GET("/:id", handlers.GetHealthTalkByID)

	talks.Use(middleware.AuthMiddleware())
	{
		talks.POST("/", middleware.AllowTo(models.RoleDoctor), handlers.CreateHealthTalk)
		talks.PUT("/:id", middleware.AllowTo(models.RoleDoctor), handlers.UpdateHealthTalk)
		talks.DELETE("/:id", middleware.AllowTo(models.RoleDoctor), handlers.DeleteHealthTalk)
		talks.POST("/:id/comments", handlers.AddComment)
		talks.POST("/:id/like", handlers.ToggleLike)
	}
}
