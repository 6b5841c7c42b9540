package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// Signup godoc
// @Summary Register a new member
// @Description Creates a local account with email and password. New members get the consumer role; the developer role is only assigned through the seed tool.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body models.SignupRequest true "Signup details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/members/signup [post]
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front for a clean 409
	var count int64
	if err := config.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("❌ Signup lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	hashStr := string(hash)

	user := models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: &hashStr,
		Provider:     "local",
		Role:         models.RoleConsumer,
		Status:       "active",
	}

	if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("❌ Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	log.Printf("✅ New member registered: %s", user.Email)

	// Log them straight in so the storefront can skip a second round trip
	if _, err := issueLoginSession(c, &user); err != nil {
		log.Printf("⚠️  Signup succeeded but auto-login failed: %v", err)
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created - please log in", user.ToResponse()))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", user.ToResponse()))
}
