// Package core holds the terminal-agnostic building blocks shared by the game
// and the platform layer: world geometry, the cell screen buffer, input frames
// and runtime configuration. It must not import Bubble Tea.
package core

import "math"

// Vec is a point or displacement in world units.
// World space is centered at the origin with y growing upwards.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Lerp interpolates between v and o, t in [0, 1].
func (v Vec) Lerp(o Vec, t float64) Vec {
	return v.Add(o.Sub(v).Scale(t))
}

// Box is an axis-aligned bounding box anchored at its center.
// Collision in the game ignores rotation and only uses boxes.
type Box struct {
	Center Vec
	W, H   float64
}

// BoxAt builds a box of the given size centered on p.
func BoxAt(p Vec, w, h float64) Box {
	return Box{Center: p, W: w, H: h}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.W/2, Y: b.Center.Y - b.H/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.W/2, Y: b.Center.Y + b.H/2}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) < (b.W+o.W)/2 &&
		math.Abs(b.Center.Y-o.Center.Y) < (b.H+o.H)/2
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Vec) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Rect is an integer cell rectangle on the screen, top-left anchored.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
