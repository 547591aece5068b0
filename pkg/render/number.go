// number.go — The number card: flat background, context line, oversized
// gradient numeral, unit line, tagline.
package render

import (
	"image"

	"github.com/fogleman/gg"
)

// Numeral target ratios and spacing.
const (
	numberHeightRatio = 0.60
	numberWidthRatio  = 0.56
	numberTextWidth   = 0.85 // wrap width for context/unit, fraction of W
	numberContextY    = 0.12 // context block top, fraction of H
	numberSpacing     = 50   // gap above and below the numeral
	numberTaglineY    = 165  // tagline offset from the bottom
)

// NumberComposer renders "number" posts.
type NumberComposer struct {
	cfg   Config
	fonts *FontCache
}

// NewNumberComposer creates a number card composer.
func NewNumberComposer(cfg Config, fonts *FontCache) *NumberComposer {
	return &NumberComposer{cfg: cfg, fonts: fonts}
}

// Compose renders the card.
func (c *NumberComposer) Compose(rec Record) (image.Image, error) {
	content := NumberContentFromRecord(rec)
	w, h := c.cfg.Width, c.cfg.Height

	dc := gg.NewContext(w, h)
	dc.SetColor(PaletteColor("cream_bg"))
	dc.Clear()

	textColor := PaletteColor("black")
	wrapWidth := int(float64(w) * numberTextWidth)

	// Context text, top-aligned at 12% canvas height.
	contextFace := c.fonts.Face(FontSatoshiRegular, SizeNumberContext)
	contextEnd := DrawCenteredWrapped(dc, content.Context, contextFace, textColor,
		int(float64(h)*numberContextY), wrapWidth, numberLineSpacing)

	// The gradient numeral, sized to the target ratios and centered.
	numberFace, _ := FitFont(c.fonts, content.Number, FontBaskervilleRegular,
		w, h, numberHeightRatio, numberWidthRatio)
	numeral := GradientText(numberFace, content.Number,
		ParseHexColor(NumberGradient[0]), ParseHexColor(NumberGradient[1]))

	numberY := contextEnd + numberSpacing
	numberX := (w - numeral.Bounds().Dx()) / 2
	dc.DrawImage(numeral, numberX, numberY)

	// Unit text below the numeral.
	unitFace := c.fonts.Face(FontSatoshiRegular, SizeNumberUnit)
	unitY := numberY + numeral.Bounds().Dy() + numberSpacing
	DrawCenteredWrapped(dc, content.Unit, unitFace, textColor, unitY, wrapWidth, numberLineSpacing)

	taglineFace := c.fonts.Face(FontBaskervilleRegular, SizeNumberTagline)
	drawTagline(dc, taglineFace, PaletteColor("coral_dark"), numberTaglineY)

	return dc.Image(), nil
}
