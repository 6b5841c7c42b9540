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

// UpdateStatus godoc
// @Summary Advance a delivery's status
// @Description Developer-only. Moves the delivery of the given member (or the caller, when no memberId is passed) along READY → SHIPPING → DONE.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberId query string false "Member whose delivery to update"
// @Param status body models.UpdateDeliveryStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown status"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 403 {object} models.ApiResponse "Developer access required"
// @Failure 404 {object} models.ApiResponse "No delivery for that member"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/deliveries/current/status [patch]
func UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	var req models.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown status"))
		return
	}

	targetID := c.Query("memberId")
	if targetID == "" {
		targetID = userID
	}

	delivery, err := services.GetDeliveryService().UpdateStatus(c.Request.Context(), targetID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNoDelivery) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No delivery for that member"))
			return
		}
		log.Printf("❌ Failed to update delivery status: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update status"))
		return
	}

	log.Printf("✅ Delivery %s moved to %s", delivery.DeliveryID, delivery.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Status updated", delivery))
}
