package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// GetMainBanner godoc
// @Summary Get the main banner
// @Description Returns the single hero banner record, or 404 when none has been set.
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No banner set"
// @Failure 500 {object} models.ApiResponse
// @Router /api/main-banner [get]
func GetMainBanner(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banner models.MainBanner
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		First(&banner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No main banner set"))
			return
		}
		log.Printf("❌ Failed to load main banner: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Main banner loaded", banner))
}

// SetMainBanner godoc
// @Summary Replace the main banner
// @Description Single-slot: the uploaded image replaces whatever banner existed before. Multipart with an "image" file and an optional "link" field.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Banner image"
// @Param link formData string false "Click-through link"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/main-banner [post]
func SetMainBanner(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	imageURL, err := uploadFormImage(c, ctx, "image")
	if err != nil {
		log.Printf("❌ Banner upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Banner image is required"))
		return
	}

	banner := models.MainBanner{
		ImageURL: imageURL,
		Link:     c.PostForm("link"),
	}

	// Single slot: drop the old record and write the new one together
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MainBanner{}).Error; err != nil {
			return err
		}
		return tx.Create(&banner).Error
	})
	if err != nil {
		log.Printf("❌ Failed to replace main banner: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save banner"))
		return
	}

	log.Printf("✅ Main banner replaced: %s", banner.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Main banner set", banner))
}

// UpdateMainBanner godoc
// @Summary Update the main banner
// @Description Swaps the image when a new one is attached, otherwise updates the link only.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file false "Replacement image"
// @Param link formData string false "Click-through link"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No banner set"
// @Failure 500 {object} models.ApiResponse
// @Router /api/main-banner [put]
func UpdateMainBanner(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banner models.MainBanner
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		First(&banner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No main banner set"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := make(map[string]interface{})

	imageURL, err := uploadFormImage(c, ctx, "image")
	if err != nil {
		log.Printf("❌ Banner upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}
	if link, ok := c.GetPostForm("link"); ok {
		updates["link"] = link
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes", banner))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&banner).
		Updates(updates).Error; err != nil {
		log.Printf("❌ Failed to update main banner: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update banner"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Main banner updated", banner))
}
