package term

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/render"
	"github.com/lixenwraith/clothsim/vmath"
)

func TestComposeScalesToCells(t *testing.T) {
	r := New(100, 100, render.DefaultPalette())
	r.SetHUD(false)
	r.Resize(10, 5)

	r.Compose(engine.Frame{
		Points: []engine.PointView{
			{Pos: vmath.V2(15, 50), Locked: true},
			{Pos: vmath.V2(85, 50)},
		},
		Ropes: []engine.RopeView{{A: vmath.V2(15, 50), B: vmath.V2(85, 50)}},
	})

	b := r.buf
	if got := b.Row(2); got != " @······o " {
		t.Errorf("Row 2 = %q", got)
	}
	if c := b.Get(1, 2); c.Fg != render.RGBRed {
		t.Errorf("Locked point color = %v", c.Fg)
	}
	if c := b.Get(8, 2); c.Fg != render.RGBBlack {
		t.Errorf("Free point color = %v", c.Fg)
	}
}

func TestComposeHUD(t *testing.T) {
	r := New(1920, 1440, render.DefaultPalette())
	r.Resize(40, 10)

	r.Compose(engine.Frame{FPS: 60, DeleteMode: true})
	b := r.buf
	if got := b.Row(0); got[:6] != "Delete" {
		t.Errorf("Expected Delete label at row start, got %q", got)
	}
	if got := b.Row(0); got[38:] != "60" {
		t.Errorf("Expected FPS at right edge, got %q", got)
	}
}

func TestComposeSkipsRunawayRopes(t *testing.T) {
	r := New(100, 100, render.DefaultPalette())
	r.SetHUD(false)
	r.Resize(10, 10)

	r.Compose(engine.Frame{
		Ropes: []engine.RopeView{
			{A: vmath.V2(-500, -500), B: vmath.V2(-400, -100)},
			{A: vmath.V2(50, 50), B: vmath.V2(1e12, 50)},
			{A: vmath.V2(math.Inf(1), 0), B: vmath.V2(10, 10)},
		},
	})
	if r.String() != "\n\n\n\n\n\n\n\n\n" {
		t.Errorf("Expected empty buffer, got %q", r.String())
	}
}

func TestCellToWorld(t *testing.T) {
	r := New(160, 160, render.DefaultPalette())
	r.Resize(10, 5)
	if w := r.CellToWorld(2, 1); w != vmath.V2(40, 48) {
		t.Errorf("CellToWorld = %v, want (40,48)", w)
	}
}

func TestColor(t *testing.T) {
	if got := Color(render.RGBRed); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Color(red) = %v", got)
	}
}

func TestFlushToSimulationScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(10, 5)

	r := New(100, 100, render.DefaultPalette())
	r.SetHUD(false)
	r.Resize(10, 5)
	r.Compose(engine.Frame{Points: []engine.PointView{{Pos: vmath.V2(35, 50), Locked: true}}})
	r.Flush(s)

	cells, w, _ := s.GetContents()
	cell := cells[3+2*w]
	if len(cell.Runes) == 0 || cell.Runes[0] != LockedRune {
		t.Errorf("Expected locked glyph at 3,2, got %q", cell.Runes)
	}
	if mainc, _, _, _ := s.GetContent(0, 0); mainc != ' ' {
		t.Errorf("Expected blank at 0,0, got %q", mainc)
	}
}
