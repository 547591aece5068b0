// card.go — Content-driven layout for the quote card.
package render

// Quote card layout constants.
const (
	cardWidthRatio   = 0.80
	cardRadius       = 20
	cardPaddingH     = 40 // horizontal padding inside the card
	cardPaddingV     = 30 // bottom padding inside the card
	cardHeaderHeight = 80 // logo + brand row
	cardTextPadding  = 40 // padding around the body text block
	taglineBand      = 150 // vertical space reserved for the bottom tagline
)

// CardRect is the position and size of the rounded quote card.
type CardRect struct {
	X, Y          int
	Width, Height int
}

// CardLayout computes the card rectangle for a body of lineCount wrapped
// lines at lineHeight pixels each. Height grows with the text and is
// never capped: the card may exceed the canvas for extreme inputs
// rather than truncate content (callers shrink the body font first, see
// the quote composer).
func CardLayout(canvasW, canvasH, lineCount, lineHeight int) CardRect {
	width := int(float64(canvasW) * cardWidthRatio)
	height := cardHeaderHeight + lineCount*lineHeight + cardTextPadding + cardPaddingV

	// Centered horizontally, and vertically within the space above the
	// tagline band.
	x := (canvasW - width) / 2
	available := canvasH - taglineBand
	y := (available - height) / 2

	return CardRect{X: x, Y: y, Width: width, Height: height}
}

// fitsCanvas reports whether the card stays inside the space above the
// tagline band.
func (c CardRect) fitsCanvas(canvasH int) bool {
	return c.Height <= canvasH-taglineBand
}
