package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/utils"
)

// Login godoc
// @Summary Log in with email and password
// @Description Validates credentials, creates a fresh server-side session, and sets the auth_token cookie. Each login replaces the previous session, so cart and checkout state are re-read from the server afterwards.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("❌ Login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Google-only accounts have no local password
	if user.PasswordHash == nil || *user.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "This account uses Google login"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account is not active"))
		return
	}

	if _, err := issueLoginSession(c, &user); err != nil {
		log.Printf("❌ Failed to issue session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	log.Printf("✅ Login successful: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", user.ToResponse()))
}
