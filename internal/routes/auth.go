package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/handlers"
	"github.com/youssefrramdan/care-insight-api/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/register/doctor", handlers.RegisterDoctor)
		auth.POST("/login", handlers.Login)
		auth.GET("/confirm/:token", handlers.ConfirmEmail)

		// Password reset (OTP flow)
		auth.POST("/forgotPassword", handlers.ForgotPassword)
		auth.POST("/verifyResetCode", handlers.VerifyResetCode)
		auth.PUT("/resetPassword", handlers.ResetPassword)

		auth.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
	}
}
