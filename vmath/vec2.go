package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units (pixels)
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns Euclidean distance between a and b
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Lerp interpolates a→b, t=0 yields a, t=1 yields b
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2Equal is exact component equality
// Used for position-based identity; NaN components never compare equal
func V2Equal(a, b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

// V2Normalize returns unit vector and true, or zero vector and false when the
// magnitude is zero or not finite
func V2Normalize(v Vec2) (Vec2, bool) {
	mag := V2Mag(v)
	if mag == 0 || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return Vec2{}, false
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, true
}

// V2NormalizeOr is zero-safe normalization with a caller-defined fallback direction
func V2NormalizeOr(v, fallback Vec2) Vec2 {
	if n, ok := V2Normalize(v); ok {
		return n
	}
	return fallback
}

// V2AbsDiffEq reports whether each axis differs by at most tol
// Square hit box, not a disc: (tol, tol) offsets still match
func V2AbsDiffEq(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// V2IsFinite reports whether both components are finite numbers
func V2IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
