package scene

import (
	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/vmath"
)

// GridSpec describes a generated cloth mesh
type GridSpec struct {
	Width, Height int
	// Spacing is the distance between neighbors; the grid is offset one step from the origin
	Spacing float64
}

// DefaultGridSpec returns the 26x26 mesh at PointSize*5 spacing
func DefaultGridSpec() GridSpec {
	return GridSpec{
		Width:   constant.GridWidth,
		Height:  constant.GridHeight,
		Spacing: constant.PointSize * constant.GridSpacingFactor,
	}
}

// GenerateGrid clears the scene and builds a row-major mesh, index = col + row*Width
// Row 0 is locked. Each cell (x,y) with x,y >= 1 links (x-1,y-1) down to (x-1,y) and
// right to (x,y-1); the last row and column get no closing edges
func (s *Scene) GenerateGrid(g GridSpec) {
	s.Clear()
	if g.Width <= 0 || g.Height <= 0 {
		return
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := vmath.V2(float64(col)*g.Spacing+g.Spacing, float64(row)*g.Spacing+g.Spacing)
			s.AddPoint(pos, row == 0)
		}
	}

	w := g.Width
	for x := 1; x < g.Width; x++ {
		for y := 1; y < g.Height; y++ {
			l, t := x-1, y-1
			first := s.order[l+t*w]
			below := s.order[l+y*w]
			right := s.order[x+t*w]
			s.AddRope(first, below)
			s.AddRope(first, right)
		}
	}
}
