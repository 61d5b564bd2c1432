package render

import (
	"fmt"

	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/vmath"
)

// HUD geometry in world units
const (
	LabelSize      = 24.0
	fpsRightInset  = 60.0
	deleteLabelPos = 10.0
)

// Label is a line of overlay text anchored at its top-left corner
type Label struct {
	Text  string
	X, Y  float64
	Color RGB
	Size  float64
}

// HUD returns the overlay labels for f on a surface width units wide
// FPS sits near the top right; "Delete" shows top left while delete mode is held
func HUD(f engine.Frame, width float64, p Palette) []Label {
	labels := []Label{{
		Text:  fmt.Sprintf("%.0f", f.FPS),
		X:     width - fpsRightInset,
		Y:     0,
		Color: p.FPS,
		Size:  LabelSize,
	}}
	if f.DeleteMode {
		labels = append(labels, Label{
			Text:  "Delete",
			X:     deleteLabelPos,
			Y:     deleteLabelPos,
			Color: p.Label,
			Size:  LabelSize,
		})
	}
	return labels
}

// Pos returns the label anchor as a world position
func (l Label) Pos() vmath.Vec2 {
	return vmath.V2(l.X, l.Y)
}
