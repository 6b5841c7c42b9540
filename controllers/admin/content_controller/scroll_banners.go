package content_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ListScrollBanners godoc
// @Summary List scroll banners
// @Description Returns the scrolling banner strip slides in sort order.
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/scroll-banners [get]
func ListScrollBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banners []models.ScrollBanner
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		log.Printf("❌ Failed to list scroll banners: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Scroll banners loaded", banners))
}

// CreateScrollBanner godoc
// @Summary Create a scroll banner slide
// @Description Multipart with an "image" file plus optional "link" and "sortOrder" fields.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Slide image"
// @Param link formData string false "Click-through link"
// @Param sortOrder formData int false "Slide position"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/scroll-banners [post]
func CreateScrollBanner(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	imageURL, err := uploadFormImage(c, ctx, "image")
	if err != nil {
		log.Printf("❌ Scroll banner upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slide image is required"))
		return
	}

	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sortOrder", "0"))

	banner := models.ScrollBanner{
		ImageURL:  imageURL,
		Link:      c.PostForm("link"),
		SortOrder: sortOrder,
	}

	if err := config.DB.WithContext(ctx).Create(&banner).Error; err != nil {
		log.Printf("❌ Failed to create scroll banner: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save banner"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Scroll banner created", banner))
}

// DeleteScrollBanner godoc
// @Summary Delete a scroll banner slide
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/scroll-banners/{id} [delete]
func DeleteScrollBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid banner ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.ScrollBanner{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("❌ Failed to delete scroll banner %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete banner"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Banner not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Scroll banner deleted", gin.H{"id": id}))
}
