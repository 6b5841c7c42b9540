package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ListSpotItems godoc
// @Summary List spotlight items
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/spot-items [get]
func ListSpotItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var items []models.SpotItem
	if err := config.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("❌ Failed to list spot items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Spot items loaded", items))
}

// CreateSpotItem godoc
// @Summary Create a spotlight item
// @Description Multipart with a "title" field plus optional "link" field and "image" file.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Tile title"
// @Param link formData string false "Click-through link"
// @Param image formData file false "Tile image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/spot-items [post]
func CreateSpotItem(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Title is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	item := models.SpotItem{
		Title: title,
		Link:  c.PostForm("link"),
	}

	imageURL, err := uploadFormImage(c, ctx, "image")
	if err != nil {
		log.Printf("❌ Spot item upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL != "" {
		item.ImageURL = &imageURL
	}

	if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("❌ Failed to create spot item: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save spot item"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Spot item created", item))
}

// DeleteSpotItem godoc
// @Summary Delete a spotlight item
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot item ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/spot-items/{id} [delete]
func DeleteSpotItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid spot item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.SpotItem{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("❌ Failed to delete spot item %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete spot item"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Spot item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Spot item deleted", gin.H{"id": id}))
}
