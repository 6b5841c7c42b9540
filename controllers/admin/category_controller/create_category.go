package category_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	nav_cache "github.com/robomart-commerce/robomart-backend/cache"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// CreateCategory godoc
// @Summary Create a category node
// @Description Adds a primary category (no parent_id) or a secondary one under parent_id. The tree is two levels deep; the new node's id is max over all ids plus one.
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CreateCategoryRequest true "Category name and optional parent"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or depth exceeded"
// @Failure 404 {object} models.ApiResponse "Parent not found"
// @Failure 409 {object} models.ApiResponse "Concurrent tree edit"
// @Failure 500 {object} models.ApiResponse
// @Router /api/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	node, err := services.GetCategoryTreeService().Create(c.Request.Context(), req.ParentID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNodeNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Parent category not found"))
		case errors.Is(err, services.ErrTreeDepth):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Categories only go two levels deep"))
		case errors.Is(err, services.ErrTreeConflict):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category tree was modified - retry"))
		default:
			log.Printf("❌ Failed to create category: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		}
		return
	}

	nav_cache.Invalidate()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", node))
}
