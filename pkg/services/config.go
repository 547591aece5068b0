// config.go — Service credentials from the environment.
// Package services holds the thin boundary clients the renderer never
// touches: publishing, image hosting, stock photos, AI image and text
// generation. No retry or scheduling policy lives here.
package services

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the credentials for all boundary services. Empty fields
// mean the corresponding service is unconfigured.
type Config struct {
	InstagramAccountID string
	InstagramToken     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	ReplicateToken  string
	UnsplashKey     string
	AnthropicAPIKey string
}

// LoadConfig reads credentials from a .env file when present, then from
// the process environment.
func LoadConfig() Config {
	_ = godotenv.Load() // .env is optional

	return Config{
		InstagramAccountID:  os.Getenv("INSTAGRAM_BUSINESS_ACCOUNT_ID"),
		InstagramToken:      os.Getenv("FACEBOOK_PAGE_ACCESS_TOKEN"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		ReplicateToken:      os.Getenv("REPLICATE_API_TOKEN"),
		UnsplashKey:         os.Getenv("UNSPLASH_ACCESS_KEY"),
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
	}
}

// Validate reports which service groups are fully configured.
func (c Config) Validate() map[string]bool {
	return map[string]bool{
		"instagram":  c.InstagramAccountID != "" && c.InstagramToken != "",
		"cloudinary": c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != "",
		"replicate":  c.ReplicateToken != "",
		"unsplash":   c.UnsplashKey != "",
		"textgen":    c.AnthropicAPIKey != "",
	}
}
