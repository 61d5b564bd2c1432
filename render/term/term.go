// Package term draws simulation frames into a terminal cell grid with tcell
package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/render"
	"github.com/lixenwraith/clothsim/vmath"
)

// Glyphs
const (
	RopeRune   = '·'
	PointRune  = 'o'
	LockedRune = '@'
)

// Renderer composes frames into a CellBuffer scaled from world units, then flushes to a screen
type Renderer struct {
	buf     *render.CellBuffer
	palette render.Palette
	worldW  float64
	worldH  float64
	view    render.Viewport
	hud     bool
}

// New creates a renderer for a worldW x worldH world; call Resize before composing
func New(worldW, worldH float64, palette render.Palette) *Renderer {
	return &Renderer{
		buf:     render.NewCellBuffer(0, 0, palette.Background),
		palette: palette,
		worldW:  worldW,
		worldH:  worldH,
		view:    render.Identity(),
		hud:     true,
	}
}

// SetHUD toggles overlay labels
func (r *Renderer) SetHUD(on bool) {
	r.hud = on
}

// Resize refits the world onto cols x rows cells
func (r *Renderer) Resize(cols, rows int) {
	r.buf.Resize(cols, rows)
	r.view = render.Fit(r.worldW, r.worldH, float64(cols), float64(rows))
}

func (r *Renderer) Viewport() render.Viewport { return r.view }

// CellToWorld maps a cell to the world position of its center
func (r *Renderer) CellToWorld(x, y int) vmath.Vec2 {
	return r.view.ToWorld(float64(x)+0.5, float64(y)+0.5)
}

// Compose draws f into the buffer: ropes, then points, then labels
func (r *Renderer) Compose(f engine.Frame) {
	r.buf.Clear()

	for _, rope := range f.Ropes {
		if !vmath.V2IsFinite(rope.A) || !vmath.V2IsFinite(rope.B) {
			continue
		}
		x0, y0 := r.view.ToCell(rope.A)
		x1, y1 := r.view.ToCell(rope.B)
		if !r.lineVisible(x0, y0, x1, y1) {
			continue
		}
		r.buf.Line(x0, y0, x1, y1, RopeRune, r.palette.Rope)
	}

	for _, p := range f.Points {
		if !vmath.V2IsFinite(p.Pos) {
			continue
		}
		x, y := r.view.ToCell(p.Pos)
		glyph := PointRune
		if p.Locked {
			glyph = LockedRune
		}
		r.buf.Set(x, y, glyph, r.palette.PointColor(p.Locked))
	}

	if !r.hud {
		return
	}
	cols, _ := r.buf.Bounds()
	for _, l := range render.HUD(f, r.worldW, r.palette) {
		x, y := r.view.ToCell(l.Pos())
		// Keep the label fully on screen
		x = max(0, min(x, cols-len(l.Text)))
		r.buf.Text(x, y, l.Text, l.Color)
	}
}

// lineVisible rejects segments wholly outside the buffer
func (r *Renderer) lineVisible(x0, y0, x1, y1 int) bool {
	cols, rows := r.buf.Bounds()
	switch {
	case x0 < 0 && x1 < 0, y0 < 0 && y1 < 0:
		return false
	case x0 >= cols && x1 >= cols, y0 >= rows && y1 >= rows:
		return false
	}
	// Bound the Bresenham walk for runaway points
	limit := 4 * (cols + rows)
	return abs(x1-x0) <= limit && abs(y1-y0) <= limit
}

// Flush copies the buffer to s and shows it
func (r *Renderer) Flush(s tcell.Screen) {
	cols, rows := r.buf.Bounds()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := r.buf.Get(x, y)
			s.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
	s.Show()
}

// Style converts a cell's colors to a tcell style
func Style(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(c.Fg)).
		Background(Color(c.Bg))
}

func Color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// String renders the buffer as text lines, trailing spaces trimmed
func (r *Renderer) String() string {
	_, rows := r.buf.Bounds()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = strings.TrimRight(r.buf.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
