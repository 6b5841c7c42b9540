package menu_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	nav_cache "github.com/robomart-commerce/robomart-backend/cache"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// DeleteMenu godoc
// @Summary Delete a navigation menu node
// @Description Removes the node and every descendant. Products referencing the removed menu ids keep their stale menuId, matching the original editor.
// @Tags Admin - Menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu node id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid id"
// @Failure 404 {object} models.ApiResponse "Node not found"
// @Failure 409 {object} models.ApiResponse "Concurrent tree edit"
// @Failure 500 {object} models.ApiResponse
// @Router /api/nav-menus/{id} [delete]
func DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid menu id"))
		return
	}

	if err := services.GetMenuTreeService().Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrNodeNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Menu not found"))
		case errors.Is(err, services.ErrTreeConflict):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Menu tree was modified - retry"))
		default:
			log.Printf("❌ Failed to delete menu %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete menu"))
		}
		return
	}

	nav_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu deleted", gin.H{"id": id}))
}
