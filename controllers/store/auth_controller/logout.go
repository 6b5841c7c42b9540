package auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/services"
)

// Logout godoc
// @Summary Log out
// @Description Destroys the server-side session and clears the auth_token cookie. The cart survives logout; only the session goes away.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logged out"
// @Router /api/auth/logout [post]
func Logout(c *gin.Context) {
	// Destroy the backing session so the token is dead even if the cookie
	// lingers somewhere
	if token, exists := c.Get("authToken"); exists {
		if err := services.GetSessionService().Destroy(c.Request.Context(), token.(string)); err != nil {
			log.Printf("⚠️  Failed to destroy session on logout: %v", err)
		}
	}

	isProd := os.Getenv("ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true, // HttpOnly (same as when set)
	)

	// also clear the user_data helper cookie
	c.SetCookie(
		"user_data",
		"",
		-1,
		"/",
		"",
		isProd,
		false, // same as when set (NOT HttpOnly)
	)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
