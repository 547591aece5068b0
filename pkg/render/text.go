// text.go — Text measurement, greedy word wrapping, and stacked drawing.
package render

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Line-spacing factors per template role.
const (
	numberLineSpacing = 1.3
	quoteLineSpacing  = 1.35
)

// MeasureWidth returns the advance width of s in pixels.
func MeasureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// InkedExtent returns the width and height of the inked bounding box of s.
func InkedExtent(face font.Face, s string) (w, h int) {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// Wrap breaks text into lines whose measured width stays within maxWidth.
// Words are never split: a single word wider than maxWidth occupies its
// own line and overflows — acceptable for short copy at canvas margins.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		test := strings.TrimSpace(current + " " + word)
		if MeasureWidth(face, test) <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// LineHeight derives the per-line stacking height from the inked bounds
// of an ascender+descender reference pair, scaled by a spacing factor.
// Using a fixed reference keeps vertical rhythm even when individual
// lines lack ascenders or descenders.
func LineHeight(face font.Face, spacing float64) int {
	_, h := InkedExtent(face, "Ay")
	return int(float64(h) * spacing)
}

// DrawCenteredWrapped wraps text to maxWidth and draws it horizontally
// centered, stacking lines from startY down. Returns the y position
// after the last line.
func DrawCenteredWrapped(dc *gg.Context, text string, face font.Face, col color.Color, startY, maxWidth int, spacing float64) int {
	lines := Wrap(face, text, maxWidth)
	lineHeight := LineHeight(face, spacing)
	cx := float64(dc.Width()) / 2

	dc.SetFontFace(face)
	dc.SetColor(col)

	currentY := startY
	for _, line := range lines {
		currentY += lineHeight
		dc.DrawStringAnchored(line, cx, float64(currentY), 0.5, 1)
	}

	return currentY
}
