package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// GetProductByID godoc
// @Summary Get a product by id
// @Description Returns one active product with its per-size stock.
// @Tags Store - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", id, "Active").
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("❌ Failed to load product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product loaded", product))
}

// GetProductBySlug godoc
// @Summary Get a product by slug
// @Description Returns one active product by slug and bumps its view counter.
// @Tags Store - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /api/products/slug/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, "Active").
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("❌ Failed to load product %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Detail views count; failures don't block the response
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("⚠️  Failed to bump views for %s: %v", slug, err)
	} else {
		product.Views++
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product loaded", product))
}
