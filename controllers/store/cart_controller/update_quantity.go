package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// UpdateQuantity godoc
// @Summary Change a cart line's quantity
// @Description Applies a signed delta to a line's quantity. The quantity never drops below 1; use the remove endpoint to take a line out of the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param change body models.UpdateCartQuantityRequest true "Line identity and quantity delta"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/cart/items [patch]
func UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	items, err := services.GetCartService().SetQuantity(c.Request.Context(), userID, req.ProductID, req.Size, req.Delta)
	if err != nil {
		log.Printf("❌ Failed to update cart quantity for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", models.CartResponse{
		Items:      items,
		TotalPrice: models.CartTotal(items),
	}))
}
