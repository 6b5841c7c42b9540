package product_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// createProductForm is the multipart shape of the create endpoint. Sizes
// arrive as a JSON-encoded array in the "sizes" field.
type createProductForm struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug" binding:"required"`
	Description string `form:"description"`
	Price       int64  `form:"price" binding:"required,min=0"`
	Category1   string `form:"category1"`
	Category2   string `form:"category2"`
	MenuID      int    `form:"menuId"`
	Sizes       string `form:"sizes"`
	Status      string `form:"status" binding:"omitempty,oneof=Active Draft"`
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Creates a product from multipart form data. An optional "image" file is uploaded to Cloudinary before the row is written.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Product title"
// @Param slug formData string true "URL slug"
// @Param price formData int true "Price in won"
// @Param sizes formData string false "JSON array of {size, stock}"
// @Param image formData file false "Product image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Failure 500 {object} models.ApiResponse
// @Router /api/products [post]
func CreateProduct(c *gin.Context) {
	overallStart := time.Now()

	// Step 1: Parse the form
	var form createProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	var sizes models.SizeList
	if form.Sizes != "" {
		if err := json.Unmarshal([]byte(form.Sizes), &sizes); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sizes payload"))
			return
		}
	}

	if form.Status == "" {
		form.Status = "Draft"
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	// Step 2: Reject duplicate slugs with a clean 409
	var count int64
	if err := config.DB.WithContext(ctx).Model(&models.Product{}).
		Where("slug = ?", form.Slug).
		Count(&count).Error; err != nil {
		log.Printf("❌ Slug lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already in use"))
		return
	}

	// Step 3: Upload the image when one was attached
	var imageURL *string
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
			return
		}
		defer file.Close()

		uploadStart := time.Now()
		url, err := cloudinaryService.UploadImage(ctx, file, "", uploadFolder)
		if err != nil {
			log.Printf("❌ Image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
			return
		}
		log.Printf("[PERF] ⏱️  Image upload: %v", time.Since(uploadStart))
		imageURL = &url
	}

	// Step 4: Save to database
	product := models.Product{
		Title:       form.Title,
		Slug:        form.Slug,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    imageURL,
		Category1:   form.Category1,
		Category2:   form.Category2,
		MenuID:      form.MenuID,
		Sizes:       sizes,
		Status:      form.Status,
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("❌ Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product: "+err.Error()))
		return
	}

	log.Printf("[PERF] ⏱️  ⭐ CREATE PRODUCT TOTAL: %v (id=%d)", time.Since(overallStart), product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
