package admin_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/controllers/admin/category_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/admin/content_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/admin/menu_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/admin/product_controller"
	"github.com/robomart-commerce/robomart-backend/middleware"
)

// SetupCatalogRoutes sets up the developer-gated catalog and content
// mutations. Every route here requires a logged-in developer account and is
// rate limited.
func SetupCatalogRoutes(router *gin.RouterGroup) {
	admin := router.Group("")
	admin.Use(
		middleware.RateLimiter(60, time.Minute),
		middleware.AuthMiddleware(),
		middleware.RequireDeveloperMiddleware(),
	)
	{
		// Products
		admin.POST("/products", product_controller.CreateProduct)
		admin.PUT("/products/:id", product_controller.UpdateProduct)
		admin.DELETE("/products/:id", product_controller.DeleteProduct)

		// Category tree
		admin.POST("/categories", category_controller.CreateCategory)
		admin.DELETE("/categories/:id", category_controller.DeleteCategory)

		// Navigation menu tree
		admin.POST("/nav-menus", menu_controller.CreateMenu)
		admin.DELETE("/nav-menus/:id", menu_controller.DeleteMenu)

		// Landing page content
		admin.POST("/main-banner", content_controller.SetMainBanner)
		admin.PUT("/main-banner", content_controller.UpdateMainBanner)
		admin.POST("/main-video", content_controller.SetMainVideo)
		admin.POST("/text-banners", content_controller.CreateTextBanner)
		admin.DELETE("/text-banners/:id", content_controller.DeleteTextBanner)
		admin.POST("/scroll-banners", content_controller.CreateScrollBanner)
		admin.DELETE("/scroll-banners/:id", content_controller.DeleteScrollBanner)
		admin.POST("/spot-items", content_controller.CreateSpotItem)
		admin.DELETE("/spot-items/:id", content_controller.DeleteSpotItem)
	}
}
