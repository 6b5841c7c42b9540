package product_controller

import (
	"github.com/robomart-commerce/robomart-backend/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// uploadFolder is where product images land in Cloudinary.
const uploadFolder = "robomart/products"
