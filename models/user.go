package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles. "developer" is the administrative role: it unlocks the admin
// surfaces and is refused at checkout.
const (
	RoleConsumer  = "consumer"
	RoleDeveloper = "developer"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  *string   `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	GoogleID      *string   `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'local'"`
	Role          string    `json:"role" gorm:"type:varchar(20);default:'consumer';check:role IN ('consumer', 'developer')"`
	Status        string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data returned by /auth/me.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse. An empty role is reported as
// "consumer" so clients never see an unset role.
func (u *User) ToResponse() UserResponse {
	role := u.Role
	if role == "" {
		role = RoleConsumer
	}
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          role,
		Provider:      u.Provider,
		EmailVerified: u.EmailVerified,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"shopper@example.com"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required" example:"Hong Gildong"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
