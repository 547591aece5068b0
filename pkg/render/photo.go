// photo.go — The photo card: a caller-resolved raster center-cropped to
// the canvas, one optional post-processing effect, optional logo
// overlay, tagline.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/lemiddle/postkit/pkg/assets"
)

// Photo effect constants.
const (
	photoWarmOpacity = 0.12 // warm color blend intensity
	photoSaturation  = 10   // saturation boost, percent
	photoVeilOpacity = 0.25 // translucent white veil intensity
	photoLogoSize    = 280
	photoTaglineY    = 100
)

// ErrNoPhotoSource is returned when neither a pre-fetched raster nor a
// readable local path is available. This is the one terminal render
// error: the composer cannot invent a photo, and the caller must not
// let it abort unrelated renders in a batch.
var ErrNoPhotoSource = errors.New("photo source missing: resolve image bytes before composing")

// PhotoComposer renders "photo" posts. Source, when set, overrides the
// record's image_path.
type PhotoComposer struct {
	cfg   Config
	fonts *FontCache

	// Source is the pre-fetched raster for the next Compose call.
	// Callers resolving photos from remote services decode the bytes
	// and set this before composing.
	Source image.Image
}

// NewPhotoComposer creates a photo card composer.
func NewPhotoComposer(cfg Config, fonts *FontCache) *PhotoComposer {
	return &PhotoComposer{cfg: cfg, fonts: fonts}
}

// Compose renders the card.
func (c *PhotoComposer) Compose(rec Record) (image.Image, error) {
	source := c.Source
	if source == nil {
		if path := rec.str("image_path", ""); path != "" {
			img, err := assets.LoadImage(path)
			if err != nil {
				return nil, fmt.Errorf("photo source: %w", err)
			}
			source = img
		}
	}
	if source == nil {
		return nil, ErrNoPhotoSource
	}

	content := PhotoContentFromRecord(rec, source)
	w, h := c.cfg.Width, c.cfg.Height

	// Center-crop the longer axis, then resample to canvas size.
	img := imaging.Fill(content.Source, w, h, imaging.Center, imaging.Lanczos)

	// Exactly one post-processing effect; the light overlay wins when
	// both flags are set.
	switch {
	case content.LightOverlay:
		veil := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
		img = imaging.Overlay(img, veil, image.Point{}, photoVeilOpacity)
	case content.ApplyFilter:
		warm := PaletteColor("peach")
		overlay := imaging.New(w, h, color.NRGBA{warm.R, warm.G, warm.B, 255})
		img = imaging.Overlay(img, overlay, image.Point{}, photoWarmOpacity)
		img = imaging.AdjustSaturation(img, photoSaturation)
	}

	if content.OverlayLogo {
		img = c.overlayLogo(img, content.LogoColor)
	}

	dc := gg.NewContextForImage(img)
	taglineFace := c.fonts.Face(FontBaskervilleItalic, SizeQuoteTagline)
	drawTagline(dc, taglineFace, PaletteColor("white"), photoTaglineY)

	return dc.Image(), nil
}

// overlayLogo centers the logo raster on img. A missing logo asset is a
// recoverable degradation: warn and return img unchanged.
func (c *PhotoComposer) overlayLogo(img *image.NRGBA, logoColor string) *image.NRGBA {
	logo, err := assets.LoadLogo(c.cfg.LogoDir(), logoColor)
	if err != nil {
		fmt.Printf("Warning: logo unavailable (%v), skipping overlay\n", err)
		return img
	}

	resized := imaging.Resize(logo, photoLogoSize, photoLogoSize, imaging.Lanczos)
	pos := image.Pt((c.cfg.Width-photoLogoSize)/2, (c.cfg.Height-photoLogoSize)/2)
	return imaging.Overlay(img, resized, pos, 1.0)
}
