package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// GetMainVideo godoc
// @Summary Get the main video
// @Description Returns the single hero video record, or 404 when none has been set.
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No video set"
// @Failure 500 {object} models.ApiResponse
// @Router /api/main-video [get]
func GetMainVideo(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var video models.MainVideo
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No main video set"))
			return
		}
		log.Printf("❌ Failed to load main video: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Main video loaded", video))
}

// SetMainVideo godoc
// @Summary Replace the main video
// @Description Single-slot: the uploaded video replaces the previous one. Multipart with a "video" file and an optional "link" field.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param video formData file true "Hero video"
// @Param link formData string false "Click-through link"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/main-video [post]
func SetMainVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Video file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read video"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	videoURL, err := cloudinaryService.UploadVideo(ctx, file, uploadFolder)
	if err != nil {
		log.Printf("❌ Video upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload video"))
		return
	}

	video := models.MainVideo{
		VideoURL: videoURL,
		Link:     c.PostForm("link"),
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MainVideo{}).Error; err != nil {
			return err
		}
		return tx.Create(&video).Error
	})
	if err != nil {
		log.Printf("❌ Failed to replace main video: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save video"))
		return
	}

	log.Printf("✅ Main video replaced: %s", video.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Main video set", video))
}
