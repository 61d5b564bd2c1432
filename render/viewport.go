package render

import (
	"math"

	"github.com/lixenwraith/clothsim/vmath"
)

// Viewport maps world coordinates to a target surface with independent axis scales
// Terminal cells are roughly twice as tall as wide, so the axes rarely share a scale
type Viewport struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// Identity maps world units one to one
func Identity() Viewport {
	return Viewport{ScaleX: 1, ScaleY: 1}
}

// Fit stretches a worldW x worldH area over a targetW x targetH surface
func Fit(worldW, worldH, targetW, targetH float64) Viewport {
	if worldW <= 0 || worldH <= 0 {
		return Identity()
	}
	return Viewport{ScaleX: targetW / worldW, ScaleY: targetH / worldH}
}

// ToTarget converts a world position to target coordinates
func (v Viewport) ToTarget(p vmath.Vec2) (float64, float64) {
	return p.X*v.ScaleX + v.OffsetX, p.Y*v.ScaleY + v.OffsetY
}

// ToCell converts a world position to an integer cell, flooring
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x, y := v.ToTarget(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld inverts ToTarget
func (v Viewport) ToWorld(x, y float64) vmath.Vec2 {
	if v.ScaleX == 0 || v.ScaleY == 0 {
		return vmath.V2(x, y)
	}
	return vmath.V2((x-v.OffsetX)/v.ScaleX, (y-v.OffsetY)/v.ScaleY)
}
