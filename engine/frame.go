package engine

import (
	"github.com/lixenwraith/clothsim/control"
	"github.com/lixenwraith/clothsim/vmath"
)

// PointView is a drawn point
type PointView struct {
	Pos    vmath.Vec2
	Locked bool
}

// RopeView is a drawn rope, endpoints already resolved
type RopeView struct {
	A, B vmath.Vec2
}

// Frame is a read-only copy of everything a renderer draws
// Renderers never touch the scene directly
type Frame struct {
	Number     int64
	Points     []PointView
	Ropes      []RopeView
	FPS        float64
	DeleteMode bool
	Running    bool
	Mode       control.Mode
}
