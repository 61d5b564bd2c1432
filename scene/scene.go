package scene

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/vmath"
)

// PurgePolicy selects how RemovePoint finds the ropes to drop with a point
type PurgePolicy uint8

const (
	// PurgeByPosition drops every rope with an endpoint at the removed point's position
	// Coincident but distinct points are conflated; this is the legacy behavior
	PurgeByPosition PurgePolicy = iota
	// PurgeByIdentity drops only ropes that reference the removed point
	PurgeByIdentity
)

func (p PurgePolicy) String() string {
	switch p {
	case PurgeByPosition:
		return "position"
	case PurgeByIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// ParsePurgePolicy resolves a config name to a policy
func ParsePurgePolicy(name string) (PurgePolicy, error) {
	switch name {
	case "", "position":
		return PurgeByPosition, nil
	case "identity":
		return PurgeByIdentity, nil
	default:
		return PurgeByPosition, fmt.Errorf("unknown purge policy %q", name)
	}
}

type slot struct {
	point core.Point
	gen   uint32
	live  bool
}

// Scene owns all points and ropes
// Points live in a slot arena addressed by generation-checked handles; order keeps
// insertion order for index-based removal and first-match hit testing
// Not safe for concurrent use: one writer per frame
type Scene struct {
	slots []slot
	free  []uint32
	order []core.PointID
	ropes []core.Rope

	purge PurgePolicy
}

// New creates an empty scene with the legacy purge policy
func New() *Scene {
	return &Scene{
		slots: make([]slot, 0, 64),
		order: make([]core.PointID, 0, 64),
		ropes: make([]core.Rope, 0, 128),
	}
}

// SetPurgePolicy changes how RemovePoint selects incident ropes
func (s *Scene) SetPurgePolicy(p PurgePolicy) {
	s.purge = p
}

// AddPoint appends a new point; no ropes implied
func (s *Scene) AddPoint(pos vmath.Vec2, locked bool) core.PointID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.live = true
	sl.point = core.NewPoint(pos, locked)

	id := core.PointID{Slot: idx, Gen: sl.gen}
	s.order = append(s.order, id)
	return id
}

// AddRope links a and b with rest length equal to their current distance
// a == b is accepted and yields a zero-length rope
// Returns false only when a handle is stale
func (s *Scene) AddRope(a, b core.PointID) (int, bool) {
	pa, ok := s.Point(a)
	if !ok {
		return -1, false
	}
	pb, ok := s.Point(b)
	if !ok {
		return -1, false
	}

	s.ropes = append(s.ropes, core.Rope{
		A:          a,
		B:          b,
		RestLength: vmath.V2Dist(pa.Current, pb.Current),
	})
	return len(s.ropes) - 1, true
}

// RemovePoint removes the point at insertion index and its incident ropes
// Returns the number of ropes removed; out-of-range index is a no-op
func (s *Scene) RemovePoint(index int) int {
	if index < 0 || index >= len(s.order) {
		return 0
	}

	id := s.order[index]
	removedPos := s.slots[id.Slot].point.Current

	// Collect first, delete in reverse so earlier indices stay valid
	doomed := make([]int, 0, 4)
	for i, r := range s.ropes {
		if s.incident(r, id, removedPos) {
			doomed = append(doomed, i)
		}
	}

	s.order = slices.Delete(s.order, index, index+1)
	s.release(id)

	for i := len(doomed) - 1; i >= 0; i-- {
		s.ropes = slices.Delete(s.ropes, doomed[i], doomed[i]+1)
	}
	return len(doomed)
}

// RemovePointByID removes the point addressed by id, see RemovePoint
func (s *Scene) RemovePointByID(id core.PointID) (int, bool) {
	index, ok := s.IndexOf(id)
	if !ok {
		return 0, false
	}
	return s.RemovePoint(index), true
}

func (s *Scene) incident(r core.Rope, id core.PointID, pos vmath.Vec2) bool {
	if r.Touches(id) {
		return true
	}
	if s.purge == PurgeByIdentity {
		return false
	}
	a := &s.slots[r.A.Slot].point
	b := &s.slots[r.B.Slot].point
	return vmath.V2Equal(a.Current, pos) || vmath.V2Equal(b.Current, pos)
}

func (s *Scene) release(id core.PointID) {
	sl := &s.slots[id.Slot]
	sl.live = false
	sl.point = core.Point{}
	s.free = append(s.free, id.Slot)
}

// ToggleLock flips the locked flag; false if id is stale
func (s *Scene) ToggleLock(id core.PointID) bool {
	p, ok := s.Point(id)
	if !ok {
		return false
	}
	p.Locked = !p.Locked
	return true
}

// SetPosition overwrites Current only; Prev is left for integration to derive velocity
func (s *Scene) SetPosition(id core.PointID, pos vmath.Vec2) bool {
	p, ok := s.Point(id)
	if !ok {
		return false
	}
	p.Current = pos
	return true
}

// Clear removes every point and rope; all handles become stale
func (s *Scene) Clear() {
	for _, id := range s.order {
		s.release(id)
	}
	s.order = s.order[:0]
	s.ropes = s.ropes[:0]
}

// FindPointNear returns the first point in insertion order within tol of pos
// First match, not closest
func (s *Scene) FindPointNear(pos vmath.Vec2, tol float64) (int, core.PointID, bool) {
	for i, id := range s.order {
		if vmath.V2AbsDiffEq(s.slots[id.Slot].point.Current, pos, tol) {
			return i, id, true
		}
	}
	return -1, core.PointID{}, false
}

// PointsNear returns every point within tol of pos in insertion order
func (s *Scene) PointsNear(pos vmath.Vec2, tol float64) []core.PointID {
	var hits []core.PointID
	for _, id := range s.order {
		if vmath.V2AbsDiffEq(s.slots[id.Slot].point.Current, pos, tol) {
			hits = append(hits, id)
		}
	}
	return hits
}

// Point resolves a handle; the pointer is valid until the next AddPoint
func (s *Scene) Point(id core.PointID) (*core.Point, bool) {
	if id.IsZero() || int(id.Slot) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.Slot]
	if !sl.live || sl.gen != id.Gen {
		return nil, false
	}
	return &sl.point, true
}

// IndexOf returns the insertion index of a live point
func (s *Scene) IndexOf(id core.PointID) (int, bool) {
	if _, ok := s.Point(id); !ok {
		return -1, false
	}
	for i, o := range s.order {
		if o == id {
			return i, true
		}
	}
	return -1, false
}

// IDAt returns the handle at insertion index
func (s *Scene) IDAt(index int) (core.PointID, bool) {
	if index < 0 || index >= len(s.order) {
		return core.PointID{}, false
	}
	return s.order[index], true
}

// PointAt returns the point at insertion index
func (s *Scene) PointAt(index int) (*core.Point, bool) {
	id, ok := s.IDAt(index)
	if !ok {
		return nil, false
	}
	return &s.slots[id.Slot].point, true
}

// Len returns the number of live points
func (s *Scene) Len() int {
	return len(s.order)
}

// RopeCount returns the number of ropes
func (s *Scene) RopeCount() int {
	return len(s.ropes)
}

// Rope returns the rope at index
func (s *Scene) Rope(i int) (core.Rope, bool) {
	if i < 0 || i >= len(s.ropes) {
		return core.Rope{}, false
	}
	return s.ropes[i], true
}

// Endpoints resolves both rope endpoints for mutation
func (s *Scene) Endpoints(r core.Rope) (a, b *core.Point, ok bool) {
	if a, ok = s.Point(r.A); !ok {
		return nil, nil, false
	}
	if b, ok = s.Point(r.B); !ok {
		return nil, nil, false
	}
	return a, b, true
}

// EachPoint visits live points in insertion order
func (s *Scene) EachPoint(fn func(i int, id core.PointID, p *core.Point)) {
	for i, id := range s.order {
		fn(i, id, &s.slots[id.Slot].point)
	}
}

// EachRope visits ropes in collection order
func (s *Scene) EachRope(fn func(i int, r core.Rope)) {
	for i, r := range s.ropes {
		fn(i, r)
	}
}

// Validate checks that every rope endpoint is a live point
func (s *Scene) Validate() error {
	for i, r := range s.ropes {
		if _, ok := s.Point(r.A); !ok {
			return fmt.Errorf("rope %d: endpoint A %s is not live", i, r.A)
		}
		if _, ok := s.Point(r.B); !ok {
			return fmt.Errorf("rope %d: endpoint B %s is not live", i, r.B)
		}
	}
	return nil
}
