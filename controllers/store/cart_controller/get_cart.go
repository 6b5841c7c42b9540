package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// GetCart godoc
// @Summary Get the member's cart
// @Description Returns the cart items and the running total in won. Unreadable stored carts come back empty rather than erroring.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/cart [get]
func GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	items, _, err := services.GetCartService().Load(c.Request.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart loaded", models.CartResponse{
		Items:      items,
		TotalPrice: models.CartTotal(items),
	}))
}
