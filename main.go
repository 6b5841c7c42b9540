// @title Robomart Store API
// @version 1.0
// @description Robomart storefront and admin backend API documentation
// @host localhost:9999
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/controllers/admin/content_controller"
	"github.com/robomart-commerce/robomart-backend/controllers/admin/product_controller"
	_ "github.com/robomart-commerce/robomart-backend/docs"
	"github.com/robomart-commerce/robomart-backend/routes/admin_routes"
	"github.com/robomart-commerce/robomart-backend/routes/store_routes"
	"github.com/robomart-commerce/robomart-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Initialize Cloudinary service (one instance per controller package)
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
	if err := content_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Carts, sessions, deliveries, and both nav trees live in redis
	services.InitStores(blobstore.NewRedisStore(config.RedisClient, ""))

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // receipt PDF downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")

	// Public storefront (no rate limiter)
	store_routes.SetupAuthRoutes(api)
	store_routes.SetupStorefrontRoutes(api)
	store_routes.SetupCartRoutes(api)
	store_routes.SetupCheckoutRoutes(api)

	// Developer-gated catalog and content mutations
	admin_routes.SetupCatalogRoutes(api)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:9999")
	router.Run(":9999")
}
