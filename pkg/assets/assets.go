// Package assets resolves and loads raster assets from the fixed asset
// directory layout (fonts/, logo/). The renderer reads assets only from
// local storage; anything remote is resolved to bytes by callers first.
package assets

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
)

// LoadImage decodes a raster image from a local path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadLogo loads the logo raster of the given color variant ("black" or
// "white") from the logo directory.
func LoadLogo(logoDir, color string) (image.Image, error) {
	return LoadImage(filepath.Join(logoDir, fmt.Sprintf("logo_%s.png", color)))
}

// SaveImage encodes img to path, choosing the format from the extension.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("unsupported image format: %s", filepath.Ext(path))
	}
}
