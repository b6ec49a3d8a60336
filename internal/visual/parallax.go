// Package visual holds presentational helpers shared by the page renderer
// and the static scripts.
package visual

import "math"

// DefaultParallaxStrength is the offset bound, in pixels, used by the charity
// section.
const DefaultParallaxStrength = 90

// ParallaxOffset returns the vertical pixel offset for a section whose top
// edge sits sectionTop pixels from the viewport top. The section centre is
// compared with the viewport centre; the result moves against scroll and
// never exceeds strength in either direction.
func ParallaxOffset(sectionTop, sectionHeight, viewportHeight, strength float64) int {
	if viewportHeight <= 0 {
		viewportHeight = 1
	}
	strength = math.Abs(strength)
	centre := sectionTop + sectionHeight/2
	progress := (centre - viewportHeight/2) / viewportHeight
	offset := math.Round(progress * -strength)
	if math.IsNaN(offset) {
		return 0
	}
	return int(math.Max(-strength, math.Min(strength, offset)))
}

// NominalViewportHeight is the viewport height assumed before a browser
// reports its own.
const NominalViewportHeight = 900

// FoldOffset is the offset of a section that starts exactly at the fold of
// the nominal viewport and is heightRatio viewports tall. Pages render it as
// the initial offset so sections do not jump when the script takes over.
func FoldOffset(heightRatio, strength float64) int {
	vh := float64(NominalViewportHeight)
	return ParallaxOffset(vh, vh*heightRatio, vh, strength)
}
