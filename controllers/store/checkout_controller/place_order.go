package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// PlaceOrder godoc
// @Summary Place the order
// @Description Re-reads the cart from the store, refuses an empty cart or blank address, and writes the delivery record (status READY, total at submission, item snapshot). At most one current delivery exists per member: resubmission overwrites the previous record. The cart is left as-is.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.PlaceOrderRequest true "Shipping address and payment method"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing address or unknown payment method"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 403 {object} models.ApiResponse "Developer accounts cannot purchase"
// @Failure 409 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/orders [post]
func PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	if role, _ := middleware.GetUserRoleFromContext(c); role == models.RoleDeveloper {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Developer accounts cannot purchase"))
		return
	}

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	delivery, err := services.GetDeliveryService().PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("❌ Failed to place order for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed", delivery))
}
