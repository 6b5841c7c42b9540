package auth_controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

const authCookieMaxAge = 24 * 60 * 60 // 24 hours, matches JWT and session TTL

// issueLoginSession generates the JWT, creates the backing server-side
// session, and sets the auth cookie. Login and the OAuth callback both end
// here.
func issueLoginSession(c *gin.Context, user *models.User) (string, error) {
	token, err := services.GenerateUserJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return "", err
	}

	if _, err := services.GetSessionService().Create(c.Request.Context(), token, user); err != nil {
		return "", err
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		authCookieMaxAge,
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	return token, nil
}

func createOrUpdateGoogleUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.DB.WithContext(c.Request.Context()).
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      &googleID,
				Provider:      "google",
				Role:          models.RoleConsumer,
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
			}

			if err := config.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.DB.WithContext(c.Request.Context()).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
