package content_controller

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/robomart-commerce/robomart-backend/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

const uploadFolder = "robomart/content"

// uploadFormImage uploads the named multipart file when present. Returns
// ("", nil) when the field was not sent.
func uploadFormImage(c *gin.Context, ctx context.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	return cloudinaryService.UploadImage(ctx, file, "", uploadFolder)
}
