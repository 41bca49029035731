package core

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D vector in world units. World space has its origin at the
// viewport center with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction; ok is false in that case.
func (v Vec2) Normalize() (n Vec2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with the given size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Scaled returns the box with its size multiplied by f around the same center.
func (b Box) Scaled(f float64) Box {
	return Box{Center: b.Center, Size: b.Size.Scale(f)}
}

// Overlaps reports whether the two boxes intersect on both axes.
// Boxes that merely touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X &&
		bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// Range is a half-open interval [Min, Max) used for random sampling.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool {
	return r.Max > r.Min
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Sample draws a value uniformly from [Min, Max).
// An empty range yields Min.
func (r Range) Sample(rng *rand.Rand) float64 {
	if !r.Valid() {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
