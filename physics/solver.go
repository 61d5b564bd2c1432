package physics

import (
	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/scene"
	"github.com/lixenwraith/clothsim/vmath"
)

// Solver advances a scene by Verlet integration followed by iterative rope relaxation
// Results depend on point and rope collection order, which is stable across runs
type Solver struct {
	// Gravity is the downward acceleration; applied as Gravity*dt, linear in dt
	Gravity float64
	// Iterations is the number of relaxation passes per step
	Iterations int
	// Fallback is the separation direction used when rope endpoints coincide
	Fallback vmath.Vec2
}

// NewSolver returns a solver with the stock tuning
func NewSolver() *Solver {
	return &Solver{
		Gravity:    constant.Gravity,
		Iterations: constant.RelaxIterations,
		Fallback:   constant.FallbackAxis,
	}
}

// Step integrates all unlocked points then relaxes every rope
// Never creates or destroys entities
func (sv *Solver) Step(s *scene.Scene, dt float64) {
	Integrate(s, sv.Gravity, dt)
	for i := 0; i < sv.Iterations; i++ {
		Relax(s, sv.Fallback)
	}
}

// Integrate performs one Verlet step on unlocked points:
// v = cur - prev; prev = cur; cur += v; cur.y += gravity*dt
func Integrate(s *scene.Scene, gravity, dt float64) {
	accel := vmath.V2(0, gravity*dt)
	s.EachPoint(func(_ int, _ core.PointID, p *core.Point) {
		if p.Locked {
			return
		}
		before := p.Current
		p.Current = vmath.V2Add(p.Current, p.Velocity())
		p.Current = vmath.V2Add(p.Current, accel)
		p.Prev = before
	})
}

// Relax runs a single pass over ropes in collection order
func Relax(s *scene.Scene, fallback vmath.Vec2) {
	s.EachRope(func(_ int, r core.Rope) {
		a, b, ok := s.Endpoints(r)
		if !ok {
			return
		}
		RelaxRope(a, b, r.RestLength, fallback)
	})
}

// RelaxRope places unlocked endpoints rest/2 either side of their midpoint
// Both locked: inert
func RelaxRope(a, b *core.Point, rest float64, fallback vmath.Vec2) {
	if a.Locked && b.Locked {
		return
	}

	mid := vmath.V2Lerp(a.Current, b.Current, 0.5)
	dir := vmath.V2NormalizeOr(vmath.V2Sub(a.Current, b.Current), fallback)
	half := vmath.V2Scale(dir, rest/2)

	if !a.Locked {
		a.Current = vmath.V2Add(mid, half)
	}
	if !b.Locked {
		b.Current = vmath.V2Sub(mid, half)
	}
}
