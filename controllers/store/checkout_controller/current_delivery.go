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

// CurrentDelivery godoc
// @Summary Get the current delivery
// @Description Returns the member's single current delivery record. Unknown stored statuses read back as READY and unknown payment methods as card.
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 404 {object} models.ApiResponse "No delivery yet"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/deliveries/current [get]
func CurrentDelivery(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	delivery, err := services.GetDeliveryService().Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoDelivery) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No delivery yet"))
			return
		}
		log.Printf("❌ Failed to load delivery for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Current delivery", delivery))
}
