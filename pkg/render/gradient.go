// gradient.go — Linear and diagonal gradient fills, and gradient-masked text.
// Fills are buffer-batched (whole rows or a template row at a time)
// rather than per-pixel.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Direction selects the axis of a linear gradient.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Padding around gradient text, large enough to absorb glyph overshoot
// (ascenders, descenders, italic slant).
const gradientTextPadding = 20

func lerpChannel(a, b uint8, ratio float64) uint8 {
	return uint8(int(a) + int(float64(int(b)-int(a))*ratio))
}

func lerpColor(start, end color.RGBA, ratio float64) (r, g, b uint8) {
	return lerpChannel(start.R, end.R, ratio),
		lerpChannel(start.G, end.G, ratio),
		lerpChannel(start.B, end.B, ratio)
}

// Gradient produces a linear gradient interpolating each RGB channel
// along the chosen direction. The first row/column equals start and the
// last equals end (up to integer rounding).
func Gradient(width, height int, start, end color.RGBA, dir Direction) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	if dir == Vertical {
		for y := 0; y < height; y++ {
			ratio := float64(y) / float64(max(height-1, 1))
			r, g, b := lerpColor(start, end, ratio)
			fillRow(img.Pix[y*img.Stride:y*img.Stride+width*4], r, g, b)
		}
		return img
	}

	// Horizontal: build the first row column by column, then replicate it.
	row := img.Pix[:width*4]
	for x := 0; x < width; x++ {
		ratio := float64(x) / float64(max(width-1, 1))
		r, g, b := lerpColor(start, end, ratio)
		row[x*4+0] = r
		row[x*4+1] = g
		row[x*4+2] = b
		row[x*4+3] = 255
	}
	for y := 1; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], row)
	}
	return img
}

func fillRow(row []byte, r, g, b uint8) {
	for x := 0; x < len(row); x += 4 {
		row[x+0] = r
		row[x+1] = g
		row[x+2] = b
		row[x+3] = 255
	}
}

// DiagonalGradient approximates a top-left to bottom-right gradient by
// blending a column-weighted and a row-weighted ratio:
//
//	ratio = 0.3·(x/W) + 0.7·(y/H), clamped to [0,1]
//
// The per-axis contributions are precomputed so the fill needs no
// per-pixel trigonometry.
func DiagonalGradient(width, height int, start, end color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	xPart := make([]float64, width)
	for x := 0; x < width; x++ {
		xPart[x] = 0.3 * float64(x) / float64(width)
	}

	for y := 0; y < height; y++ {
		yPart := 0.7 * float64(y) / float64(height)
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			ratio := yPart + xPart[x]
			if ratio > 1 {
				ratio = 1
			}
			r, g, b := lerpColor(start, end, ratio)
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 255
		}
	}

	return img
}

// GradientText renders text filled with a vertical gradient while keeping
// the glyph outlines as its silhouette: the string is rasterized once as
// an alpha mask, and a gradient of the same dimensions is composited
// through it. The returned image carries the mask as its alpha channel.
//
// The inked bounding box's origin offset is subtracted when placing the
// dot, so overshooting glyphs register correctly inside the padding.
func GradientText(face font.Face, text string, start, end color.RGBA) *image.NRGBA {
	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	imgW := textW + gradientTextPadding*2
	imgH := textH + gradientTextPadding*2

	mask := image.NewAlpha(image.Rect(0, 0, imgW, imgH))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(gradientTextPadding) - bounds.Min.X,
			Y: fixed.I(gradientTextPadding) - bounds.Min.Y,
		},
	}
	drawer.DrawString(text)

	gradient := Gradient(imgW, imgH, start, end, Vertical)

	out := image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	draw.DrawMask(out, out.Bounds(), gradient, image.Point{}, mask, image.Point{}, draw.Over)
	return out
}
