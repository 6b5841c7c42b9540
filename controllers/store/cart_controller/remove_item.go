package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// RemoveItem godoc
// @Summary Remove a line from the cart
// @Description Drops the (product, size) line from the cart. Removing a line that isn't there is a no-op.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.RemoveCartItemRequest true "Line identity to remove"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/cart/items [delete]
func RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	items, err := services.GetCartService().Remove(c.Request.Context(), userID, req.ProductID, req.Size)
	if err != nil {
		log.Printf("❌ Failed to remove cart item for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", models.CartResponse{
		Items:      items,
		TotalPrice: models.CartTotal(items),
	}))
}
