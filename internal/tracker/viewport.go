// Package tracker implements the run map: a pan/zoom viewport over a fixed
// 1000×500 logical map space and the pins visitors drop on it.
package tracker

import "math"

// Logical map space the artwork is authored in.
const (
	MapWidth  = 1000.0
	MapHeight = 500.0

	centerX = MapWidth / 2
	centerY = MapHeight / 2
)

// Zoom behaviour for one wheel notch.
const (
	ZoomOutStep = 0.92
	ZoomInStep  = 1.08
	MinScale    = 0.85
	MaxScale    = 2.75
)

// Point is a coordinate in logical map space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// InBounds reports whether p lies inside the map, edges included.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X <= MapWidth && p.Y >= 0 && p.Y <= MapHeight
}

// Viewport is the on-screen pan offset (pixels) and zoom scale.
type Viewport struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Identity is the unpanned, unzoomed view.
func Identity() Viewport {
	return Viewport{Scale: 1}
}

// Pan moves the view by a pointer delta.
func (v Viewport) Pan(dx, dy float64) Viewport {
	if !finite(dx) || !finite(dy) {
		return v
	}
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Zoom applies one wheel step: a positive deltaY zooms out, anything else
// zooms in. The result is clamped to [MinScale, MaxScale].
func (v Viewport) Zoom(deltaY float64) Viewport {
	step := ZoomInStep
	if deltaY > 0 {
		step = ZoomOutStep
	}
	v.Scale = clamp(v.scale()*step, MinScale, MaxScale)
	return v
}

// ScreenToLogical maps a point relative to the map element's top-left
// corner, for an element of the given pixel size, into logical map space.
func (v Viewport) ScreenToLogical(cx, cy, width, height float64) Point {
	scale := v.scale()
	return Point{
		X: (cx-width/2-v.OffsetX)/scale + centerX,
		Y: (cy-height/2-v.OffsetY)/scale + centerY,
	}
}

// Transform renders the SVG transform for the map layer.
func (v Viewport) Transform() string {
	return "translate(" + formatFloat(v.OffsetX) + "px, " + formatFloat(v.OffsetY) + "px) scale(" +
		formatFloat(v.scale()) + ") translate(-500px, -250px)"
}

// scale guards against zero-value and corrupted viewports.
func (v Viewport) scale() float64 {
	if !finite(v.Scale) || v.Scale <= 0 {
		return 1
	}
	return clamp(v.Scale, MinScale, MaxScale)
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, value))
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
