// Package core provides fundamental types and utilities shared by the maze
// generator and its front ends. It contains no external dependencies
// (especially no Bubble Tea) to keep generation pure and testable.
package core

// Rect is an integer axis-aligned rectangle in world units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Shared edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a floating-point bounding box stored as a centre and half extents.
type Box struct {
	CX, CY float64
	HalfW  float64
	HalfH  float64
}

// BoxOf converts a top-left rectangle into its centre/half-extent form.
func BoxOf(r Rect) Box {
	return Box{
		CX:    float64(r.X) + float64(r.W)/2,
		CY:    float64(r.Y) + float64(r.H)/2,
		HalfW: float64(r.W) / 2,
		HalfH: float64(r.H) / 2,
	}
}

// Overlaps reports whether two boxes overlap on both axes.
// Boxes that only touch do not overlap.
func (b Box) Overlaps(other Box) bool {
	return absF(b.CX-other.CX) < b.HalfW+other.HalfW &&
		absF(b.CY-other.CY) < b.HalfH+other.HalfH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
