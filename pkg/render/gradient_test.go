package render

import (
	"image/color"
	"testing"

	"golang.org/x/image/font"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func assertCloseRGB(t *testing.T, got color.NRGBA, want color.RGBA, label string) {
	t.Helper()
	if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
		t.Errorf("%s: got %v, want within ±1 of %v", label, got, want)
	}
}

func TestGradientBoundaryValues(t *testing.T) {
	start := ParseHexColor("#E8725C")
	end := ParseHexColor("#F4A98B")

	for _, tc := range []struct {
		name string
		dir  Direction
	}{
		{"vertical", Vertical},
		{"horizontal", Horizontal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img := Gradient(64, 48, start, end, tc.dir)

			assertCloseRGB(t, img.NRGBAAt(0, 0), start, "origin")
			if tc.dir == Vertical {
				assertCloseRGB(t, img.NRGBAAt(0, 47), end, "last row")
				assertCloseRGB(t, img.NRGBAAt(63, 0), start, "first row far corner")
			} else {
				assertCloseRGB(t, img.NRGBAAt(63, 0), end, "last column")
				assertCloseRGB(t, img.NRGBAAt(0, 47), start, "first column far corner")
			}
		})
	}
}

func TestGradientRowsUniform(t *testing.T) {
	start := ParseHexColor("#000000")
	end := ParseHexColor("#FFFFFF")
	img := Gradient(32, 32, start, end, Vertical)

	for y := 0; y < 32; y += 7 {
		left := img.NRGBAAt(0, y)
		right := img.NRGBAAt(31, y)
		if left != right {
			t.Errorf("row %d not uniform: %v vs %v", y, left, right)
		}
	}
}

func TestDiagonalGradientFormula(t *testing.T) {
	start := ParseHexColor("#F4A98B")
	end := ParseHexColor("#F29B9B")
	const w, h = 100, 200
	img := DiagonalGradient(w, h, start, end)

	for _, pt := range []struct{ x, y int }{
		{0, 0}, {99, 0}, {0, 199}, {99, 199}, {50, 100},
	} {
		ratio := 0.3*float64(pt.x)/float64(w) + 0.7*float64(pt.y)/float64(h)
		if ratio > 1 {
			ratio = 1
		}
		r, g, b := lerpColor(start, end, ratio)
		want := color.RGBA{r, g, b, 255}
		assertCloseRGB(t, img.NRGBAAt(pt.x, pt.y), want, "diagonal point")
	}
}

func TestGradientTextDimensionsAndMask(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontBaskervilleRegular, 200)

	text := "19"
	bounds, _ := font.BoundString(face, text)
	wantW := (bounds.Max.X - bounds.Min.X).Ceil() + gradientTextPadding*2
	wantH := (bounds.Max.Y - bounds.Min.Y).Ceil() + gradientTextPadding*2

	img := GradientText(face, text, ParseHexColor("#E8725C"), ParseHexColor("#F4A98B"))

	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("dimensions %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}

	// Padding corners stay fully transparent; glyph coverage appears
	// somewhere inside.
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha %d, want 0", a)
	}

	opaque := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 200 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Error("no glyph coverage found in the mask")
	}
}

func TestGradientTextEmptyString(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontBaskervilleRegular, 100)

	img := GradientText(face, "", ParseHexColor("#E8725C"), ParseHexColor("#F4A98B"))
	if img.Bounds().Dx() != gradientTextPadding*2 || img.Bounds().Dy() != gradientTextPadding*2 {
		t.Errorf("empty text produced %v", img.Bounds())
	}
}
