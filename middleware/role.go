package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/models"
)

// RequireDeveloperMiddleware restricts admin surfaces to developer-role
// accounts. Must run after AuthMiddleware.
func RequireDeveloperMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if role != models.RoleDeveloper {
			log.Printf("[auth] non-developer attempted admin action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - developer access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
