package product_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Updates product fields by id. JSON bodies carry text changes; multipart bodies may attach a replacement "image" file.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	// Multipart means an image swap; JSON is text-only
	contentType := c.GetHeader("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		updateProductImage(c, id)
		return
	}

	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Find existing product
	var product models.Product
	if err := config.DB.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Category1 != nil {
		updates["category1"] = *input.Category1
	}
	if input.Category2 != nil {
		updates["category2"] = *input.Category2
	}
	if input.MenuID != nil {
		updates["menu_id"] = *input.MenuID
	}
	if input.Sizes != nil {
		updates["sizes"] = models.SizeList(*input.Sizes)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes", product))
		return
	}

	// Step 3: Apply
	if err := config.DB.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		log.Printf("❌ Failed to update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product))
}

// updateProductImage replaces the image via Cloudinary and stores the new URL.
func updateProductImage(c *gin.Context, id int64) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	url, err := cloudinaryService.UploadImage(ctx, file, "", uploadFolder)
	if err != nil {
		log.Printf("❌ Image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&product).
		UpdateColumn("image_url", url).Error; err != nil {
		log.Printf("❌ Failed to store image URL: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	product.ImageURL = &url
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product image updated", product))
}
