package render

import "image/color"

// RGB is a 24-bit color shared by the raster and terminal back ends
type RGB struct {
	R, G, B uint8
}

// Color converts to an opaque image/color value
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

var (
	RGBWhite = RGB{0xff, 0xff, 0xff}
	RGBBlack = RGB{0x00, 0x00, 0x00}
	RGBRed   = RGB{0xff, 0x00, 0x00}
)

// Palette assigns colors to drawn elements
type Palette struct {
	Background RGB
	Rope       RGB
	Point      RGB
	Locked     RGB
	FPS        RGB
	Label      RGB
}

// DefaultPalette is white background, black geometry, locked points and FPS in red
func DefaultPalette() Palette {
	return Palette{
		Background: RGBWhite,
		Rope:       RGBBlack,
		Point:      RGBBlack,
		Locked:     RGBRed,
		FPS:        RGBRed,
		Label:      RGBBlack,
	}
}

// PointColor picks the fill for a point
func (p Palette) PointColor(locked bool) RGB {
	if locked {
		return p.Locked
	}
	return p.Point
}
