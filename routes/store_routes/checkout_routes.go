package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/controllers/store/checkout_controller"
	"github.com/robomart-commerce/robomart-backend/middleware"
)

// SetupCheckoutRoutes sets up the checkout flow and delivery reads. The
// status update is developer-gated on top of the regular auth.
func SetupCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware())
	{
		checkout.POST("", checkout_controller.Checkout)
		checkout.POST("/select", checkout_controller.SelectPayment)
	}

	router.POST("/orders", middleware.AuthMiddleware(), checkout_controller.PlaceOrder)

	deliveries := router.Group("/deliveries")
	deliveries.Use(middleware.AuthMiddleware())
	{
		deliveries.GET("/current", checkout_controller.CurrentDelivery)
		deliveries.GET("/current/receipt", checkout_controller.Receipt)
		deliveries.PATCH("/current/status",
			middleware.RequireDeveloperMiddleware(), checkout_controller.UpdateStatus)
	}
}
