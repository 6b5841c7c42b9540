package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// PaymentMethods the storefront can offer at checkout.
var paymentMethods = []string{models.PaymentKakao, models.PaymentCard}

// Checkout godoc
// @Summary Enter the checkout flow
// @Description Entry point to the payment-method step. Refused for logged-out visitors (the client redirects to login), for developer accounts, and when the cart is empty. Success returns the cart total and the allowed payment methods.
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 403 {object} models.ApiResponse "Developer accounts cannot purchase"
// @Failure 409 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/checkout [post]
func Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	if role, _ := middleware.GetUserRoleFromContext(c); role == models.RoleDeveloper {
		log.Printf("⚠️  Developer account %s attempted checkout", userID)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Developer accounts cannot purchase"))
		return
	}

	items, _, err := services.GetCartService().Load(c.Request.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout ready", gin.H{
		"items":          items,
		"totalPrice":     models.CartTotal(items),
		"paymentMethods": paymentMethods,
	}))
}
