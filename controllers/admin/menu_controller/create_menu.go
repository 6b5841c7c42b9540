package menu_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	nav_cache "github.com/robomart-commerce/robomart-backend/cache"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// CreateMenu godoc
// @Summary Create a navigation menu node
// @Description Adds a menu node under parent_id (zero for a first-level menu). Third-level nodes are leaves and must carry a path; the path is normalized to start with "/".
// @Tags Admin - Menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu body models.CreateMenuRequest true "Menu name, optional parent and path"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request, depth exceeded, or missing leaf path"
// @Failure 404 {object} models.ApiResponse "Parent not found"
// @Failure 409 {object} models.ApiResponse "Concurrent tree edit"
// @Failure 500 {object} models.ApiResponse
// @Router /api/nav-menus [post]
func CreateMenu(c *gin.Context) {
	var req models.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	node, err := services.GetMenuTreeService().Create(c.Request.Context(), req.ParentID, req.Name, req.Path)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNodeNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Parent menu not found"))
		case errors.Is(err, services.ErrTreeDepth):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Menus only go three levels deep"))
		case errors.Is(err, services.ErrMenuPathRequired):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Leaf menus need a path"))
		case errors.Is(err, services.ErrTreeConflict):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Menu tree was modified - retry"))
		default:
			log.Printf("❌ Failed to create menu: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create menu"))
		}
		return
	}

	nav_cache.Invalidate()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Menu created", node))
}
