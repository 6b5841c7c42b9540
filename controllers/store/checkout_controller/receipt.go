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

// Receipt godoc
// @Summary Download the current delivery receipt
// @Description Streams a PDF receipt for the member's current delivery.
// @Tags Checkout
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary "Receipt PDF"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 404 {object} models.ApiResponse "No delivery yet"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/deliveries/current/receipt [get]
func Receipt(c *gin.Context) {
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

	name, _ := c.Get("userName")
	email, _ := c.Get("userEmail")
	customerName, _ := name.(string)
	customerEmail, _ := email.(string)

	buf, err := services.GenerateReceiptPDF(delivery, customerName, customerEmail)
	if err != nil {
		log.Printf("❌ Failed to generate receipt PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+delivery.DeliveryID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
