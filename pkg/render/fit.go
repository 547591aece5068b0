// fit.go — Adaptive font-size search for the oversized numeral.
package render

import (
	"math"

	"golang.org/x/image/font"
)

// Fit-search bounds. The scan is linear so the cache never holds more
// than (fitMaxSize-fitMinSize)/fitStep distinct sizes per family.
const (
	fitMinSize     = 50
	fitMaxSize     = 1000
	fitStep        = 5
	fitCoarseStep  = 10
	fitDefaultSize = 350
	fitTolerance   = 0.05
)

// FitFont finds the font size at which text occupies approximately
// targetHeightRatio of canvasH and targetWidthRatio of canvasW,
// measured on the inked bounding box.
//
// Three tiers guarantee termination with a usable result:
//  1. Fine scan minimizing the summed relative deviation from both
//     targets, abandoning the scan once a candidate leaves the 5%
//     tolerance band after at least one acceptable candidate was seen.
//  2. If no candidate satisfied the band, a coarse scan keeping the
//     largest size whose box still fits inside both targets.
//  3. A hard-coded default size.
//
// Returns the chosen face and its size.
func FitFont(cache *FontCache, text, family string, canvasW, canvasH int, targetHeightRatio, targetWidthRatio float64) (font.Face, int) {
	targetH := float64(canvasH) * targetHeightRatio
	targetW := float64(canvasW) * targetWidthRatio

	var best font.Face
	bestSize := 0
	bestScore := math.Inf(1)

	for size := fitMinSize; size <= fitMaxSize; size += fitStep {
		face := cache.Face(family, size)
		w, h := InkedExtent(face, text)

		heightDiff := math.Abs(float64(h)-targetH) / targetH
		widthDiff := math.Abs(float64(w)-targetW) / targetW

		if heightDiff > fitTolerance || widthDiff > fitTolerance {
			if best == nil {
				// Nothing acceptable yet; keep scanning upward.
				continue
			}
			// The optimum has been passed; stop early.
			break
		}

		if score := heightDiff + widthDiff; score < bestScore {
			bestScore = score
			best = face
			bestSize = size
		}
	}

	if best == nil {
		// No size satisfied the tolerance band: take the largest size
		// that still fits entirely within both target dimensions.
		for size := fitMinSize; size <= fitMaxSize; size += fitCoarseStep {
			face := cache.Face(family, size)
			w, h := InkedExtent(face, text)
			if float64(h) > targetH || float64(w) > targetW {
				break
			}
			best = face
			bestSize = size
		}
	}

	if best == nil {
		best = cache.Face(family, fitDefaultSize)
		bestSize = fitDefaultSize
	}

	return best, bestSize
}
