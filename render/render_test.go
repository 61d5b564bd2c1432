package render

import (
	"testing"

	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/vmath"
)

func TestHUDLabels(t *testing.T) {
	p := DefaultPalette()

	labels := HUD(engine.Frame{FPS: 59.6}, 1920, p)
	if len(labels) != 1 {
		t.Fatalf("Expected only FPS label, got %d", len(labels))
	}
	if labels[0].Text != "60" || labels[0].X != 1860 || labels[0].Color != RGBRed {
		t.Errorf("Unexpected FPS label %+v", labels[0])
	}

	labels = HUD(engine.Frame{DeleteMode: true}, 1920, p)
	if len(labels) != 2 || labels[1].Text != "Delete" || labels[1].Color != RGBBlack {
		t.Errorf("Expected Delete label, got %+v", labels)
	}
}

func TestViewportFit(t *testing.T) {
	v := Fit(1920, 1440, 240, 90)
	x, y := v.ToCell(vmath.V2(960, 720))
	if x != 120 || y != 45 {
		t.Errorf("Center mapped to %d,%d, want 120,45", x, y)
	}
	if w := v.ToWorld(120, 45); w != vmath.V2(960, 720) {
		t.Errorf("ToWorld = %v, want (960,720)", w)
	}

	if id := Fit(0, 10, 5, 5); id != Identity() {
		t.Errorf("Degenerate world should give identity, got %+v", id)
	}
}

func TestCellBufferLine(t *testing.T) {
	b := NewCellBuffer(5, 3, RGBWhite)

	b.Line(0, 0, 4, 2, '#', RGBBlack)
	want := []string{"#    ", " ##  ", "   ##"}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}

	// Reversed endpoints cover the same cells
	b.Clear()
	b.Line(4, 0, 0, 0, '-', RGBBlack)
	if got := b.Row(0); got != "-----" {
		t.Errorf("Reversed line = %q", got)
	}
}

func TestCellBufferClipping(t *testing.T) {
	b := NewCellBuffer(4, 2, RGBWhite)
	b.Line(-3, 1, 6, 1, '=', RGBBlack)
	if got := b.Row(1); got != "====" {
		t.Errorf("Clipped line = %q", got)
	}
	b.Text(2, 0, "abc", RGBRed)
	if got := b.Row(0); got != "  ab" {
		t.Errorf("Clipped text = %q", got)
	}
	if c := b.Get(9, 9); c.Rune != ' ' {
		t.Errorf("Out of bounds read = %q", c.Rune)
	}
}

func TestCellBufferResize(t *testing.T) {
	b := NewCellBuffer(3, 3, RGBWhite)
	b.Set(1, 1, 'x', RGBBlack)
	b.Resize(2, 2)
	if w, h := b.Bounds(); w != 2 || h != 2 {
		t.Errorf("Bounds = %dx%d", w, h)
	}
	if b.Get(1, 1).Rune != ' ' {
		t.Error("Resize must clear")
	}
}
