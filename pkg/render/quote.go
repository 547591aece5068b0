// quote.go — The quote card: diagonal gradient background, white rounded
// card sized to its text, header row, body text, tagline.
package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/lemiddle/postkit/pkg/assets"
)

// Header and shrink-to-fit constants.
const (
	quoteHeaderTopPadding = 25
	quoteLogoSize         = 34
	quoteDotSize          = 5
	quoteDotSpacing       = 8
	quoteTaglineY         = 100

	// Body font shrink floor: very long text steps the body size down
	// before the card is allowed to overflow the canvas.
	quoteTextMinSize = 20
	quoteTextStep    = 2
)

// QuoteComposer renders "quote" posts.
type QuoteComposer struct {
	cfg   Config
	fonts *FontCache
}

// NewQuoteComposer creates a quote card composer.
func NewQuoteComposer(cfg Config, fonts *FontCache) *QuoteComposer {
	return &QuoteComposer{cfg: cfg, fonts: fonts}
}

// layout wraps the body text and computes the card rectangle, stepping
// the body font size down from its nominal value until the card fits
// above the tagline band. At the minimum size the card is returned as
// computed, even if it overflows: text is never truncated.
func (c *QuoteComposer) layout(text string) (lines []string, lineHeight int, face font.Face, card CardRect) {
	maxWidth := int(float64(c.cfg.Width)*cardWidthRatio) - cardPaddingH*2

	for size := SizeQuoteText; size >= quoteTextMinSize; size -= quoteTextStep {
		face = c.fonts.Face(FontSatoshiRegular, size)
		lines = Wrap(face, text, maxWidth)
		lineHeight = LineHeight(face, quoteLineSpacing)
		card = CardLayout(c.cfg.Width, c.cfg.Height, len(lines), lineHeight)
		if card.fitsCanvas(c.cfg.Height) {
			return lines, lineHeight, face, card
		}
	}
	return lines, lineHeight, face, card
}

// Compose renders the card.
func (c *QuoteComposer) Compose(rec Record) (image.Image, error) {
	content := QuoteContentFromRecord(rec)
	w, h := c.cfg.Width, c.cfg.Height

	background := DiagonalGradient(w, h,
		ParseHexColor(QuoteBackgroundGradient[0]), ParseHexColor(QuoteBackgroundGradient[1]))

	dc := gg.NewContext(w, h)
	dc.DrawImage(background, 0, 0)

	lines, lineHeight, bodyFace, card := c.layout(content.Text)

	// White card with rounded corners.
	dc.SetColor(PaletteColor("white"))
	dc.DrawRoundedRectangle(float64(card.X), float64(card.Y),
		float64(card.Width), float64(card.Height), cardRadius)
	dc.Fill()

	c.drawHeader(dc, card)

	// Body text, left-aligned at the top of the text area.
	textColor := PaletteColor("black")
	dc.SetFontFace(bodyFace)
	dc.SetColor(textColor)
	textX := float64(card.X + cardPaddingH)
	currentY := card.Y + cardHeaderHeight
	for _, line := range lines {
		currentY += lineHeight
		dc.DrawString(line, textX, float64(currentY))
	}

	taglineFace := c.fonts.Face(FontBaskervilleItalic, SizeQuoteTagline)
	drawTagline(dc, taglineFace, PaletteColor("white"), quoteTaglineY)

	return dc.Image(), nil
}

// drawHeader draws the card header row: logo, brand text, and the
// three-dot affordance at the right edge.
func (c *QuoteComposer) drawHeader(dc *gg.Context, card CardRect) {
	textColor := PaletteColor("black")
	logoX := card.X + cardPaddingH
	logoY := card.Y + quoteHeaderTopPadding

	logo, err := assets.LoadLogo(c.cfg.LogoDir(), "black")
	if err != nil {
		fmt.Printf("Warning: card logo unavailable (%v), skipping\n", err)
	} else {
		resized := imaging.Resize(logo, quoteLogoSize, quoteLogoSize, imaging.Lanczos)
		dc.DrawImage(resized, logoX, logoY)
	}

	headerFace := c.fonts.Face(FontSatoshiBold, SizeQuoteHeader)
	dc.SetFontFace(headerFace)
	dc.SetColor(textColor)
	brandX := float64(logoX + quoteLogoSize + 10)
	brandY := float64(logoY + 6 + LineHeight(headerFace, 1.0))
	dc.DrawString(BrandText, brandX, brandY)

	// Three evenly spaced dots at the card's right edge.
	dotsWidth := quoteDotSize*3 + quoteDotSpacing*2
	dotsX := card.X + card.Width - cardPaddingH - dotsWidth
	dotY := float64(logoY+12) + float64(quoteDotSize)/2
	for i := 0; i < 3; i++ {
		x := float64(dotsX+i*(quoteDotSize+quoteDotSpacing)) + float64(quoteDotSize)/2
		dc.DrawCircle(x, dotY, float64(quoteDotSize)/2)
		dc.Fill()
	}
}
