package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
)

func RegisterDiagnosisRoutes(r gin.IRouter) {
	diagnosis := r.Group("/diagnosis")
	diagnosis.Use(middleware.AuthMiddleware())
	{
		diagnosis.POST("/breast-cancer", handlers.BreastCancer)
		diagnosis.POST("/brain-cancer", handlers.BrainCancer)
		diagnosis.POST("/skin-cancer", handlers.SkinCancer)
		diagnosis.POST("/gene-classify", handlers.GeneClassify)
	}
}
