package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds a product line to the cart. Lines are keyed by (product, size): adding the same size again merges quantities. Size defaults to the first size in stock; sold-out sizes are refused.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddCartItemRequest true "Product and size to add"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 403 {object} models.ApiResponse "Developer accounts cannot shop"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Size sold out or quantity beyond stock"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/cart/items [post]
func AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	if role, _ := middleware.GetUserRoleFromContext(c); role == models.RoleDeveloper {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Developer accounts cannot shop"))
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Look up the product
	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", req.ProductID, "Active").
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("❌ Product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Step 2: Resolve the size - default to the first size in stock
	size := req.Size
	if size == 0 {
		size = product.FirstAvailableSize()
		if size == 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is sold out"))
			return
		}
	}

	stock := product.StockForSize(size)
	if stock == 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Selected size is sold out"))
		return
	}

	qty := req.Qty
	if qty < 1 {
		qty = 1
	}
	if qty > stock {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Not enough stock for the requested quantity"))
		return
	}

	// Step 3: Merge into the cart
	item := models.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Size:      size,
		Qty:       qty,
	}
	item.ImageURL = product.ImageURL

	items, err := services.GetCartService().AddOrMerge(c.Request.Context(), userID, item)
	if err != nil {
		log.Printf("❌ Failed to add cart item for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	log.Printf("✅ Cart add: user=%s product=%d size=%d qty=%d", userID, product.ID, size, qty)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to cart", models.CartResponse{
		Items:      items,
		TotalPrice: models.CartTotal(items),
	}))
}
