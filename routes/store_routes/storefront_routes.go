package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/controllers/admin/content_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/store/nav_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/store/product_controller"
)

// SetupStorefrontRoutes sets up the public catalog, navigation, and content
// reads. No auth required.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", product_controller.ListProducts)
		products.GET("/:id", product_controller.GetProductByID)
		products.GET("/slug/:slug", product_controller.GetProductBySlug)
	}

	router.GET("/categories", nav_controller.GetCategories)
	router.GET("/nav-menus/tree", nav_controller.GetMenuTree)

	// Landing page content
	router.GET("/main-banner", content_controller.GetMainBanner)
	router.GET("/main-video", content_controller.GetMainVideo)
	router.GET("/text-banners", content_controller.ListTextBanners)
	router.GET("/scroll-banners", content_controller.ListScrollBanners)
	router.GET("/spot-items", content_controller.ListSpotItems)
}
