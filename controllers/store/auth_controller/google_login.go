package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/robomart-commerce/robomart-backend/config"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a secure cookie, and redirecting the user to Google's OAuth consent page.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/auth/google [get]
func GoogleLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	log.Printf("🔐 Setting state cookie: %s", state)

	c.SetCookie(
		"oauth_state", // name
		state,         // value
		3600,          // maxAge (1 hour)
		"/",           // path
		"",            // domain (empty = current domain)
		false,         // secure (false for localhost)
		true,          // httpOnly
	)

	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)

	log.Printf("🔗 Redirecting to: %s", url)

	c.Redirect(http.StatusTemporaryRedirect, url)
}
