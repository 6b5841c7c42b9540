package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a developer account. Developers unlock the admin surfaces
// and are refused at checkout.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ROBOMART STORE - Developer Account Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Get input from user
	email, password, name := getDeveloperCredentials()

	// Check if the email is taken
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ Account with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	hashStr := string(hash)
	log.Println("✓ Password hashed securely")

	developer := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
		Provider:     "local",
		Role:         models.RoleDeveloper,
		Status:       "active",
	}

	if err := config.DB.Create(&developer).Error; err != nil {
		log.Fatalf("Failed to create developer account: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Developer Account Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", developer.ID)
	fmt.Printf("Email: %s\n", developer.Email)
	fmt.Printf("Name:  %s\n", developer.Name)
	fmt.Printf("Role:  %s\n", developer.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/auth/login with email and password")
	fmt.Println("3. Manage products, menus, and content through the /api admin endpoints")
	fmt.Println()
}

// getDeveloperCredentials prompts for account details
func getDeveloperCredentials() (email, password, name string) {
	fmt.Println("Enter Developer Account Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) < 8 {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
