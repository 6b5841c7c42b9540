package category_controller

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

// DeleteCategory godoc
// @Summary Delete a category node
// @Description Removes the node and its whole subtree in one write. Products keep their stored category labels; nothing re-points them.
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category node id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid id"
// @Failure 404 {object} models.ApiResponse "Node not found"
// @Failure 409 {object} models.ApiResponse "Concurrent tree edit"
// @Failure 500 {object} models.ApiResponse
// @Router /api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	if err := services.GetCategoryTreeService().Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrNodeNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		case errors.Is(err, services.ErrTreeConflict):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category tree was modified - retry"))
		default:
			log.Printf("❌ Failed to delete category %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		}
		return
	}

	nav_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted", gin.H{"id": id}))
}
