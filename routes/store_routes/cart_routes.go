package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/controllers/store/cart_controller"
	"github.com/robomart-commerce/robomart-backend/middleware"
)

// SetupCartRoutes sets up the cart endpoints. All of them require a login.
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddItem)
		cart.PATCH("/items", cart_controller.UpdateQuantity)
		cart.DELETE("/items", cart_controller.RemoveItem)
	}
}
