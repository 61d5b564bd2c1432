package scene

import (
	"testing"

	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/vmath"
)

func TestAddRopeCapturesRestLength(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	b := s.AddPoint(vmath.V2(10, 0), false)

	i, ok := s.AddRope(a, b)
	if !ok {
		t.Fatal("Expected rope to be created")
	}
	r, _ := s.Rope(i)
	if r.RestLength != 10 {
		t.Errorf("Expected rest length 10, got %f", r.RestLength)
	}

	// Moving an endpoint afterwards must not change the rest length
	s.SetPosition(b, vmath.V2(30, 0))
	r, _ = s.Rope(i)
	if r.RestLength != 10 {
		t.Errorf("Rest length changed after move: %f", r.RestLength)
	}
}

func TestSelfRopeIsZeroLength(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(5, 5), false)

	i, ok := s.AddRope(a, a)
	if !ok {
		t.Fatal("Self rope should be accepted")
	}
	r, _ := s.Rope(i)
	if r.RestLength != 0 {
		t.Errorf("Expected zero rest length, got %f", r.RestLength)
	}
}

func TestSetPositionLeavesPrev(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(1, 2), false)
	s.SetPosition(a, vmath.V2(7, 9))

	p, _ := s.Point(a)
	if p.Current != vmath.V2(7, 9) {
		t.Errorf("Current = %v, want (7,9)", p.Current)
	}
	if p.Prev != vmath.V2(1, 2) {
		t.Errorf("Prev = %v, want unchanged (1,2)", p.Prev)
	}
}

func TestRemovePointPurgesIncidentRopes(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	b := s.AddPoint(vmath.V2(10, 0), false)
	c := s.AddPoint(vmath.V2(20, 0), false)
	d := s.AddPoint(vmath.V2(30, 0), false)
	s.AddRope(a, b)
	s.AddRope(b, c)
	s.AddRope(c, d)
	s.AddRope(d, b)

	before := s.RopeCount()
	removed := s.RemovePoint(1) // b
	if removed != 3 {
		t.Fatalf("Expected 3 incident ropes removed, got %d", removed)
	}
	if s.RopeCount() != before-removed {
		t.Errorf("Rope count %d, want %d", s.RopeCount(), before-removed)
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 points left, got %d", s.Len())
	}
	if _, ok := s.Point(b); ok {
		t.Error("Removed handle still resolves")
	}

	s.EachRope(func(_ int, r core.Rope) {
		if r.Touches(b) {
			t.Errorf("Rope %v still references removed point", r)
		}
	})
	if err := s.Validate(); err != nil {
		t.Errorf("Scene invalid after removal: %v", err)
	}

	// Remaining rope is c-d
	r, _ := s.Rope(0)
	if r.A != c || r.B != d {
		t.Errorf("Expected remaining rope c-d, got %v", r)
	}
}

func TestRemovePointPositionIdentity(t *testing.T) {
	// Two distinct points at the same coordinates are conflated by the legacy purge
	build := func(policy PurgePolicy) (*Scene, core.PointID) {
		s := New()
		s.SetPurgePolicy(policy)
		a := s.AddPoint(vmath.V2(0, 0), false)
		twin := s.AddPoint(vmath.V2(0, 0), false)
		other := s.AddPoint(vmath.V2(50, 0), false)
		s.AddRope(a, other)
		s.AddRope(twin, other)
		return s, twin
	}

	s, twin := build(PurgeByPosition)
	if n := s.RemovePoint(0); n != 2 {
		t.Errorf("position policy: expected 2 ropes purged, got %d", n)
	}
	if _, ok := s.Point(twin); !ok {
		t.Error("Twin point itself must survive")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("position policy left dangling rope: %v", err)
	}

	s, _ = build(PurgeByIdentity)
	if n := s.RemovePoint(0); n != 1 {
		t.Errorf("identity policy: expected 1 rope purged, got %d", n)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("identity policy left dangling rope: %v", err)
	}
}

func TestRemovePointByID(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	b := s.AddPoint(vmath.V2(10, 0), false)
	c := s.AddPoint(vmath.V2(20, 0), false)
	s.AddRope(a, b)
	s.AddRope(b, c)

	purged, ok := s.RemovePointByID(b)
	if !ok || purged != 2 {
		t.Fatalf("Expected (2, true), got (%d, %v)", purged, ok)
	}
	if s.Len() != 2 || s.RopeCount() != 0 {
		t.Errorf("Expected 2 points and 0 ropes, got %d/%d", s.Len(), s.RopeCount())
	}

	// Stale handle is reported, nothing else is touched
	purged, ok = s.RemovePointByID(b)
	if ok || purged != 0 {
		t.Errorf("Expected (0, false) for stale handle, got (%d, %v)", purged, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Stale removal changed the scene: %d points", s.Len())
	}
}

func TestRemovePointOutOfRange(t *testing.T) {
	s := New()
	s.AddPoint(vmath.V2(0, 0), false)
	if n := s.RemovePoint(5); n != 0 {
		t.Errorf("Expected no-op, got %d", n)
	}
	if n := s.RemovePoint(-1); n != 0 {
		t.Errorf("Expected no-op, got %d", n)
	}
	if s.Len() != 1 {
		t.Errorf("Point count changed: %d", s.Len())
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	s.RemovePoint(0)
	b := s.AddPoint(vmath.V2(1, 1), false)

	if a.Slot != b.Slot {
		t.Fatalf("Expected slot reuse, got %d and %d", a.Slot, b.Slot)
	}
	if _, ok := s.Point(a); ok {
		t.Error("Stale handle resolved to the new occupant")
	}
	if s.ToggleLock(a) {
		t.Error("ToggleLock accepted a stale handle")
	}
	if _, ok := s.AddRope(a, b); ok {
		t.Error("AddRope accepted a stale handle")
	}
}

func TestFindPointNearFirstMatch(t *testing.T) {
	s := New()
	s.AddPoint(vmath.V2(0, 0), false)
	far := s.AddPoint(vmath.V2(15, 0), false)
	s.AddPoint(vmath.V2(12, 0), false)

	// (12,0) is closest to (13,0) but (15,0) was inserted first
	i, id, ok := s.FindPointNear(vmath.V2(13, 0), 5)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if i != 1 || id != far {
		t.Errorf("Expected first match index 1, got %d (%v)", i, id)
	}

	if _, _, ok := s.FindPointNear(vmath.V2(500, 500), 5); ok {
		t.Error("Expected miss far from all points")
	}

	hits := s.PointsNear(vmath.V2(13, 0), 5)
	if len(hits) != 2 {
		t.Errorf("Expected 2 points near, got %d", len(hits))
	}
}

func TestToggleLock(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	s.ToggleLock(a)
	p, _ := s.Point(a)
	if !p.Locked {
		t.Error("Expected locked after toggle")
	}
	s.ToggleLock(a)
	if p.Locked {
		t.Error("Expected unlocked after second toggle")
	}
}

func TestClearInvalidatesHandles(t *testing.T) {
	s := New()
	a := s.AddPoint(vmath.V2(0, 0), false)
	b := s.AddPoint(vmath.V2(1, 0), false)
	s.AddRope(a, b)

	s.Clear()
	if s.Len() != 0 || s.RopeCount() != 0 {
		t.Fatalf("Expected empty scene, got %d points %d ropes", s.Len(), s.RopeCount())
	}
	s.AddPoint(vmath.V2(0, 0), false)
	if _, ok := s.Point(a); ok {
		t.Error("Handle from before Clear resolved")
	}
}

func TestIndexOfTracksShifts(t *testing.T) {
	s := New()
	s.AddPoint(vmath.V2(0, 0), false)
	s.AddPoint(vmath.V2(1, 0), false)
	c := s.AddPoint(vmath.V2(2, 0), false)

	s.RemovePoint(0)
	i, ok := s.IndexOf(c)
	if !ok || i != 1 {
		t.Errorf("Expected index 1 after shift, got %d (%v)", i, ok)
	}
}

func TestParsePurgePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    PurgePolicy
		wantErr bool
	}{
		{"", PurgeByPosition, false},
		{"position", PurgeByPosition, false},
		{"identity", PurgeByIdentity, false},
		{"bogus", PurgeByPosition, true},
	}
	for _, tt := range tests {
		got, err := ParsePurgePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
