// config.go — Static design configuration: palette, fonts, sizes, canvases.
package render

import (
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
)

// Canvases maps canvas preset names to [width, height].
// "portrait" is the 4:5 feed format, "square" the 1:1 alternative.
var Canvases = map[string][2]int{
	"portrait": {1080, 1350},
	"square":   {1080, 1080},
}

// Palette maps semantic color names to hex strings.
var Palette = map[string]string{
	"cream_bg":    "#FDF8F5",
	"coral_dark":  "#E8725C",
	"coral_light": "#F4A98B",
	"peach":       "#FCBF9A",
	"pink":        "#F29B9B",
	"white":       "#FFFFFF",
	"black":       "#1A1A1A",
}

// Gradient color pairs, start to end.
var (
	NumberGradient          = [2]string{"#E8725C", "#F4A98B"}
	QuoteBackgroundGradient = [2]string{"#F4A98B", "#F29B9B"}
)

// Font asset filenames. Satoshi for utility text, Libre Baskerville for
// the numeral and the signature tagline.
const (
	FontSatoshiRegular     = "Satoshi-Regular.otf"
	FontSatoshiBold        = "Satoshi-Bold.otf"
	FontBaskervilleRegular = "LibreBaskerville-Regular.ttf"
	FontBaskervilleItalic  = "LibreBaskerville-Italic.ttf"
)

// Point sizes per template role.
const (
	SizeNumberContext = 38
	SizeNumberUnit    = 36
	SizeNumberTagline = 32

	SizeQuoteHeader  = 24
	SizeQuoteText    = 32
	SizeQuoteTagline = 30
)

// Tagline is drawn at the bottom of every template.
const Tagline = "Retrouvez-vous simplement."

// BrandText is the handle shown in the quote card header.
const BrandText = "lemiddle.app"

// Config holds the render-time configuration for one composer.
type Config struct {
	Width  int
	Height int

	// AssetsDir is the root of the fixed asset layout:
	// <AssetsDir>/fonts for font files, <AssetsDir>/logo for logo rasters.
	AssetsDir string
}

// NewConfig builds a Config for a named canvas preset. Unknown presets
// fall back to portrait.
func NewConfig(assetsDir, canvas string) Config {
	dims, ok := Canvases[canvas]
	if !ok {
		dims = Canvases["portrait"]
	}
	return Config{
		Width:     dims[0],
		Height:    dims[1],
		AssetsDir: assetsDir,
	}
}

// FontsDir returns the font asset directory.
func (c Config) FontsDir() string {
	return filepath.Join(c.AssetsDir, "fonts")
}

// LogoDir returns the logo asset directory.
func (c Config) LogoDir() string {
	return filepath.Join(c.AssetsDir, "logo")
}

// ParseHexColor converts a "#rrggbb" string to an opaque color.RGBA.
// Malformed input yields white.
func ParseHexColor(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{255, 255, 255, 255}
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// PaletteColor resolves a named palette color. Unknown names yield black,
// matching the palette's own "black" entry.
func PaletteColor(name string) color.RGBA {
	hex, ok := Palette[name]
	if !ok {
		hex = Palette["black"]
	}
	return ParseHexColor(hex)
}
