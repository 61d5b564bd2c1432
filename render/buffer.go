package render

// Cell is one character cell of a CellBuffer
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// CellBuffer is an in-memory character grid composed each frame and flushed to a terminal
// Writes outside the bounds are dropped
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

func NewCellBuffer(width, height int, bg RGB) *CellBuffer {
	b := &CellBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is short, and clears
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = width, height
	b.Clear()
}

// Clear fills every cell with a blank on the background color
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	// Doubling copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *CellBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Set writes r in fg over the background
func (b *CellBuffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[x+y*b.width] = Cell{Rune: r, Fg: fg, Bg: b.bg}
}

// Get returns the cell at x,y; out of bounds reads as a blank
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	}
	return b.cells[x+y*b.width]
}

// Line plots r from (x0,y0) to (x1,y1) inclusive with Bresenham's algorithm
func (b *CellBuffer) Line(x0, y0, x1, y1 int, r rune, fg RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy

	for {
		b.Set(x0, y0, r, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// Text writes s left to right starting at x,y
func (b *CellBuffer) Text(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg)
		x++
	}
}

// Row returns the runes of row y as a string
func (b *CellBuffer) Row(y int) string {
	rs := make([]rune, b.width)
	for x := range rs {
		rs[x] = b.Get(x, y).Rune
	}
	return string(rs)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
