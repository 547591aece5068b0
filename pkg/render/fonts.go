// fonts.go — Font loading and memoization keyed by (family, size).
// TTF assets parse through freetype; OTF assets (CFF outlines) fall back
// to the sfnt parser. A missing asset degrades to the embedded Go font
// with a warning so layout always has metrics to work with.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontDPI = 72

// parsedFont is one successfully parsed font asset, in whichever
// representation its format required.
type parsedFont struct {
	tt *truetype.Font
	ot *opentype.Font
}

func (p parsedFont) newFace(size int) (font.Face, error) {
	if p.tt != nil {
		return truetype.NewFace(p.tt, &truetype.Options{
			Size:    float64(size),
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		}), nil
	}
	return opentype.NewFace(p.ot, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}

// FontCache loads and memoizes font faces. The same (family, size) pair
// always returns the same handle within a process run. Safe for
// concurrent use; the cache is unbounded but the set of distinct sizes
// per run is small (bounded by the fit-search scan range).
type FontCache struct {
	dir string

	mu     sync.Mutex
	fonts  map[string]parsedFont
	faces  map[string]font.Face
	warned map[string]bool

	fallback parsedFont
}

// NewFontCache creates a cache reading font assets from dir.
func NewFontCache(dir string) *FontCache {
	fallback, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// The embedded Go font is known-good; this cannot happen at runtime.
		panic(fmt.Sprintf("parse embedded fallback font: %v", err))
	}

	return &FontCache{
		dir:      dir,
		fonts:    make(map[string]parsedFont),
		faces:    make(map[string]font.Face),
		warned:   make(map[string]bool),
		fallback: parsedFont{ot: fallback},
	}
}

// Face returns the rasterized face for family at the given point size,
// loading and caching it on first request. It never fails: a family that
// cannot be loaded is replaced by the embedded fallback font.
func (c *FontCache) Face(family string, size int) font.Face {
	key := fmt.Sprintf("%s_%d", family, size)

	c.mu.Lock()
	defer c.mu.Unlock()

	if face, ok := c.faces[key]; ok {
		return face
	}

	face, err := c.load(family).newFace(size)
	if err != nil {
		c.warnOnce(family, err)
		// The fallback parser accepts the embedded font at any size.
		face, _ = c.fallback.newFace(size)
	}

	c.faces[key] = face
	return face
}

// load returns the parsed font for family, reading the asset on first
// use. Called with c.mu held.
func (c *FontCache) load(family string) parsedFont {
	if p, ok := c.fonts[family]; ok {
		return p
	}

	p, err := c.parseAsset(family)
	if err != nil {
		c.warnOnce(family, err)
		p = c.fallback
	}

	c.fonts[family] = p
	return p
}

func (c *FontCache) parseAsset(family string) (parsedFont, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, family))
	if err != nil {
		return parsedFont{}, err
	}

	if tt, err := truetype.Parse(data); err == nil {
		return parsedFont{tt: tt}, nil
	}

	ot, err := opentype.Parse(data)
	if err != nil {
		return parsedFont{}, fmt.Errorf("parse %s: %w", family, err)
	}
	return parsedFont{ot: ot}, nil
}

func (c *FontCache) warnOnce(family string, err error) {
	if c.warned[family] {
		return
	}
	c.warned[family] = true
	fmt.Printf("Warning: font %s unavailable (%v), using default\n", family, err)
}
