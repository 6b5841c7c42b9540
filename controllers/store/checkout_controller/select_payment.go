package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/middleware"
	"github.com/robomart-commerce/robomart-backend/models"
)

// SelectPayment godoc
// @Summary Choose a payment method
// @Description Validates the chosen method (kakao or card) and returns the order-page redirect target carrying the method as a query parameter.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body models.SelectPaymentRequest true "Payment method"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown payment method"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 403 {object} models.ApiResponse "Developer accounts cannot purchase"
// @Router /api/checkout/select [post]
func SelectPayment(c *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	if role, _ := middleware.GetUserRoleFromContext(c); role == models.RoleDeveloper {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Developer accounts cannot purchase"))
		return
	}

	var req models.SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown payment method"))
		return
	}

	// Full-page navigation on the client; the method travels as a query param
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment method selected", gin.H{
		"redirect": "/orders?pm=" + req.PaymentMethod,
	}))
}
