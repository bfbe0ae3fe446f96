package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
)

func RegisterMessageRoutes(r gin.IRouter) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("/users", handlers.GetUsersForSidebar)
		messages.GET("/:id", handlers.GetMessages)
		messages.POST("/:id", handlers.SendMessage)
	}
}
