package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// AuthMiddleware validates the JWT from the auth cookie or Authorization
// header and checks that a live server-side session backs it. Logged-out
// tokens (destroyed session) are rejected even if the JWT itself is valid.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
			c.Abort()
			return
		}

		claims, err := services.VerifyUserJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		sessionService := services.GetSessionService()

		session, err := sessionService.Get(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired - please log in again"))
			c.Abort()
			return
		}

		if err := sessionService.Touch(c.Request.Context(), token); err != nil {
			log.Printf("[auth] failed to update session activity: %v", err)
			// Session touch failure shouldn't block the request
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)
		c.Set("userRole", session.Role)
		c.Set("authToken", token)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves user identity when a valid token is
// present but lets anonymous requests through. Storefront read endpoints
// use it so logged-in responses can be personalized.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := services.VerifyUserJWT(token)
		if err != nil {
			c.Next()
			return
		}

		session, err := services.GetSessionService().Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)
		c.Set("userRole", session.Role)
		c.Set("authToken", token)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	// Cookie first, Authorization header as fallback
	if cookieToken, err := c.Cookie("auth_token"); err == nil && cookieToken != "" {
		return cookieToken
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	return role.(string), true
}
