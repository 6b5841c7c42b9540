package nav_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	nav_cache "github.com/robomart-commerce/robomart-backend/cache"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// GetCategories godoc
// @Summary Get the category tree
// @Description Returns the full two-level category tree. Served from an in-process cache; a broken stored tree reads back empty.
// @Tags Store - Navigation
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/categories [get]
func GetCategories(c *gin.Context) {
	if roots, ok := nav_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories loaded", roots))
		return
	}

	roots, _, err := services.GetCategoryTreeService().Load(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to load categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load categories"))
		return
	}

	nav_cache.SetCategories(roots)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories loaded", roots))
}

// GetMenuTree godoc
// @Summary Get the navigation menu tree
// @Description Returns the full three-level navigation menu tree with leaf paths.
// @Tags Store - Navigation
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/nav-menus/tree [get]
func GetMenuTree(c *gin.Context) {
	if roots, ok := nav_cache.GetMenus(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Menus loaded", roots))
		return
	}

	roots, _, err := services.GetMenuTreeService().Load(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to load menus: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load menus"))
		return
	}

	nav_cache.SetMenus(roots)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menus loaded", roots))
}
