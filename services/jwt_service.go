package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserJWTClaims is the token payload for shoppers and developers alike;
// the role claim tells them apart.
type UserJWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and verification
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: secretKey}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateUserJWT creates a signed token for a user. Tokens expire after
// JWT_EXPIRY (default 24h).
func (j *JWTService) GenerateUserJWT(userID uuid.UUID, email, name, role string) (string, error) {
	if userID == uuid.Nil || email == "" {
		return "", errors.New("userID and email cannot be empty")
	}

	duration := 24 * time.Hour
	if expiryStr := os.Getenv("JWT_EXPIRY"); expiryStr != "" {
		if d, err := time.ParseDuration(expiryStr); err == nil {
			duration = d
		}
	}

	now := time.Now()
	claims := UserJWTClaims{
		UserID: userID.String(),
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "robomart-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyUserJWT verifies and parses a token, returning its claims.
func (j *JWTService) VerifyUserJWT(tokenString string) (*UserJWTClaims, error) {
	claims := &UserJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

// Convenience functions that use the global service

func GenerateUserJWT(userID uuid.UUID, email, name, role string) (string, error) {
	return GetJWTService().GenerateUserJWT(userID, email, name, role)
}

func VerifyUserJWT(tokenString string) (*UserJWTClaims, error) {
	return GetJWTService().VerifyUserJWT(tokenString)
}
