package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/controllers/store/auth_controller"
	"github.com/robomart-commerce/robomart-backend/middleware"
)

// SetupAuthRoutes sets up signup, login, and the Google OAuth flow
func SetupAuthRoutes(router *gin.RouterGroup) {
	router.POST("/members/signup", auth_controller.Signup)

	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		// Optional auth so a lingering cookie still gets its session destroyed
		auth.POST("/logout", middleware.OptionalAuthMiddleware(), auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.Me)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
	}
}
