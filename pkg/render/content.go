// content.go — Typed content per template, constructed from generic records.
// Tagged variants replace ad hoc map lookups so defaults live in one
// place: missing strings become empty, the warm filter is on, the logo
// overlay is off.
package render

import "image"

// Record is the caller-supplied mapping of named content fields, as
// stored in posts.json. Read-only to the renderer.
type Record map[string]any

func (r Record) str(key, def string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (r Record) boolean(key string, def bool) bool {
	if v, ok := r[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// NumberContent drives the number template.
type NumberContent struct {
	Context string // context line above the numeral
	Number  string // the oversized numeral
	Unit    string // unit line below the numeral
}

// NumberContentFromRecord extracts number template fields, applying
// documented defaults for missing ones.
func NumberContentFromRecord(rec Record) NumberContent {
	return NumberContent{
		Context: rec.str("context_text", ""),
		Number:  rec.str("number", "0"),
		Unit:    rec.str("unit_text", ""),
	}
}

// QuoteContent drives the quote template.
type QuoteContent struct {
	Text string
}

// QuoteContentFromRecord extracts quote template fields.
func QuoteContentFromRecord(rec Record) QuoteContent {
	return QuoteContent{Text: rec.str("text", "")}
}

// PhotoContent drives the photo template. Source must be resolved by
// the caller before composing; the renderer never fetches it.
type PhotoContent struct {
	Source       image.Image
	OverlayLogo  bool
	ApplyFilter  bool
	LightOverlay bool
	LogoColor    string // "black" or "white"
}

// PhotoContentFromRecord extracts photo template flags. Defaults: warm
// filter on, light overlay off, logo overlay off, black logo.
func PhotoContentFromRecord(rec Record, source image.Image) PhotoContent {
	return PhotoContent{
		Source:       source,
		OverlayLogo:  rec.boolean("overlay_logo", false),
		ApplyFilter:  rec.boolean("apply_filter", true),
		LightOverlay: rec.boolean("light_overlay", false),
		LogoColor:    rec.str("logo_color", "black"),
	}
}
