package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ListTextBanners godoc
// @Summary List text banners
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/text-banners [get]
func ListTextBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banners []models.TextBanner
	if err := config.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&banners).Error; err != nil {
		log.Printf("❌ Failed to list text banners: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Text banners loaded", banners))
}

// CreateTextBanner godoc
// @Summary Create a text banner
// @Description Multipart with "text" and optional "link" fields plus an optional "image" file.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param text formData string true "Banner text"
// @Param link formData string false "Click-through link"
// @Param image formData file false "Optional image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/text-banners [post]
func CreateTextBanner(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Banner text is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	banner := models.TextBanner{
		Text: text,
		Link: c.PostForm("link"),
	}

	imageURL, err := uploadFormImage(c, ctx, "image")
	if err != nil {
		log.Printf("❌ Text banner upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL != "" {
		banner.ImageURL = &imageURL
	}

	if err := config.DB.WithContext(ctx).Create(&banner).Error; err != nil {
		log.Printf("❌ Failed to create text banner: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save banner"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Text banner created", banner))
}

// DeleteTextBanner godoc
// @Summary Delete a text banner
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/text-banners/{id} [delete]
func DeleteTextBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid banner ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.TextBanner{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("❌ Failed to delete text banner %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete banner"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Banner not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Text banner deleted", gin.H{"id": id}))
}
