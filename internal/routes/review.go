package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func RegisterReviewRoutes(r gin.IRouter) {
	reviews := r.Group("/reviews")
	reviews.GET("/doctor/:doctorId", handlers.GetDoctorReviews)

	reviews.Use(middleware.AuthMiddleware(), middleware.AllowTo(models.RolePatient))
	{
		reviews.POST("/", handlers.CreateReview)
		reviews.PUT("/:id", handlers.UpdateReview)
		reviews.DELETE("/:id", handlers.DeleteReview)
	}
}
