package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var Cloudinary *CloudinaryService

func InitializeCloudinary(cloudinaryURL string) error {
	if cloudinaryURL == "" {
		return fmt.Errorf("cloudinary URL is required")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	Cloudinary = &CloudinaryService{cld: cld}
	return nil
}

// RehostDataURI uploads an inline base64 image and returns its hosted HTTPS
// URL. Used when a custom product enters the wishlist carrying a data URI,
// so the persisted record stays small.
func RehostDataURI(dataURI, folder string) (string, error) {
	if Cloudinary == nil {
		return "", fmt.Errorf("cloudinary is not initialized")
	}

	payload := dataURI
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid data URI: %w", err)
	}

	ctx := context.Background()
	publicID := fmt.Sprintf("%s/%d", folder, time.Now().UnixNano())

	result, err := Cloudinary.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	// Normalize URLs to HTTPS to avoid production blocking
	if result.SecureURL != "" {
		return forceHTTPS(result.SecureURL), nil
	}
	if result.URL != "" {
		return forceHTTPS(result.URL), nil
	}
	return "", fmt.Errorf("upload returned no URL")
}

func forceHTTPS(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
