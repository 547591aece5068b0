// composer.go — Shared composer plumbing: the template interface, canvas
// helpers, the tagline, and PNG output.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Composer renders one finished canvas from one content record. A render
// call owns its canvas for its duration and mutates no shared state
// beyond font-cache fills, so renders are independently retryable.
type Composer interface {
	Compose(rec Record) (image.Image, error)
}

// ForType returns the composer for a post type ("number", "quote",
// "photo").
func ForType(postType string, cfg Config, fonts *FontCache) (Composer, error) {
	switch postType {
	case "number":
		return NewNumberComposer(cfg, fonts), nil
	case "quote":
		return NewQuoteComposer(cfg, fonts), nil
	case "photo":
		return NewPhotoComposer(cfg, fonts), nil
	default:
		return nil, fmt.Errorf("unknown post type %q", postType)
	}
}

// drawTagline centers the tagline with its top yOffset pixels above the
// bottom edge.
func drawTagline(dc *gg.Context, face font.Face, col color.Color, yOffset int) {
	lineHeight := LineHeight(face, 1.0)
	dc.SetFontFace(face)
	dc.SetColor(col)
	y := dc.Height() - yOffset + lineHeight
	dc.DrawStringAnchored(Tagline, float64(dc.Width())/2, float64(y), 0.5, 1)
}

// SavePNG writes img losslessly to path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}
