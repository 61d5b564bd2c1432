// Package raster draws simulation frames into images with fogleman/gg
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/render"
)

// Options configures a Renderer; zero world size means world units equal pixels
type Options struct {
	WorldWidth  float64
	WorldHeight float64
	PointSize   float64
	Palette     render.Palette
	HUD         bool
}

// DefaultOptions draws at the stock point size with overlay labels
func DefaultOptions() Options {
	return Options{
		PointSize: constant.PointSize,
		Palette:   render.DefaultPalette(),
		HUD:       true,
	}
}

// Renderer owns one drawing surface reused across frames
type Renderer struct {
	dc    *gg.Context
	opts  Options
	view  render.Viewport
	ttf   *truetype.Font
	faces map[float64]font.Face
}

func New(width, height int, opts Options) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	if opts.PointSize <= 0 {
		opts.PointSize = constant.PointSize
	}
	view := render.Identity()
	if opts.WorldWidth > 0 && opts.WorldHeight > 0 {
		view = render.Fit(opts.WorldWidth, opts.WorldHeight, float64(width), float64(height))
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}

	return &Renderer{
		dc:    gg.NewContext(width, height),
		opts:  opts,
		view:  view,
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

func (r *Renderer) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[size] = f
	return f
}

// Draw paints f: ropes under points, labels on top
func (r *Renderer) Draw(f engine.Frame) {
	dc := r.dc
	p := r.opts.Palette
	scale := min(r.view.ScaleX, r.view.ScaleY)

	dc.SetColor(p.Background.Color())
	dc.Clear()

	if len(f.Points) == 0 && !r.opts.HUD {
		return
	}

	dc.SetLineWidth(r.opts.PointSize * constant.RopeWidthFactor * scale)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetColor(p.Rope.Color())
	for _, rope := range f.Ropes {
		x1, y1 := r.view.ToTarget(rope.A)
		x2, y2 := r.view.ToTarget(rope.B)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	radius := r.opts.PointSize * scale
	for _, pt := range f.Points {
		x, y := r.view.ToTarget(pt.Pos)
		dc.SetColor(p.PointColor(pt.Locked).Color())
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}

	if !r.opts.HUD {
		return
	}
	worldWidth := float64(dc.Width()) / r.view.ScaleX
	for _, l := range render.HUD(f, worldWidth, p) {
		x, y := r.view.ToTarget(l.Pos())
		dc.SetFontFace(r.face(l.Size * scale))
		dc.SetColor(l.Color.Color())
		dc.DrawStringAnchored(l.Text, x, y, 0, 1)
	}
}

func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
