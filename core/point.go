package core

import (
	"fmt"

	"github.com/lixenwraith/clothsim/vmath"
)

// PointID is a generation-checked handle into the scene point arena
// Zero value is never issued and never resolves
type PointID struct {
	Slot uint32
	Gen  uint32
}

// IsZero reports whether the handle is the unset value
func (id PointID) IsZero() bool {
	return id.Gen == 0
}

func (id PointID) String() string {
	return fmt.Sprintf("p%d.%d", id.Slot, id.Gen)
}

// Point is a Verlet particle
// Velocity is implicit: Current - Prev
type Point struct {
	// Current is the authoritative position this frame
	Current vmath.Vec2
	// Prev is the position one step ago, written only by integration
	Prev vmath.Vec2
	// Locked points are never moved by the solver
	Locked bool
}

// NewPoint creates a point at rest
func NewPoint(pos vmath.Vec2, locked bool) Point {
	return Point{Current: pos, Prev: pos, Locked: locked}
}

// Velocity returns the implicit per-step displacement
func (p *Point) Velocity() vmath.Vec2 {
	return vmath.V2Sub(p.Current, p.Prev)
}
