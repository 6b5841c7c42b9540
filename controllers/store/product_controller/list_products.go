package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ListProducts godoc
// @Summary List storefront products
// @Description Lists active products, optionally filtered by category labels or menu id, newest first.
// @Tags Store - Products
// @Produce json
// @Param category1 query string false "First-level category label"
// @Param category2 query string false "Second-level category label"
// @Param menuId query int false "Leaf menu id"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products [get]
func ListProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("status = ?", "Active")

	if category1 := c.Query("category1"); category1 != "" {
		query = query.Where("category1 = ?", category1)
	}
	if category2 := c.Query("category2"); category2 != "" {
		query = query.Where("category2 = ?", category2)
	}
	if menuIDStr := c.Query("menuId"); menuIDStr != "" {
		if menuID, err := strconv.Atoi(menuIDStr); err == nil {
			query = query.Where("menu_id = ?", menuID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("❌ Failed to count products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	var products []models.Product
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error; err != nil {
		log.Printf("❌ Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products loaded", products, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
