package anim

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is the closed set of stateful 2D drawing primitives that draw
// procedures operate on. Draw procedures receive a Canvas but never own it.
//
// A Canvas holds mutable pen and path state and is not safe for concurrent
// use; one instance must never be shared between concurrently executing
// frame computations.
type Canvas interface {
	// Transform state.
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(angle float64)

	// Pen state.
	SetLineWidth(w float64)
	SetColor(c color.Color)

	// Paint floods the whole surface with the current color.
	Paint()

	// Path construction and stroking.
	NewPath()
	NewSubPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Fill()

	// Push saves the current graphics state; Pop restores the last
	// pushed state.
	Push()
	Pop()
}

// Surface is a raster-backed Canvas. One Surface is reused for every frame
// of a render run; nothing clears it between frames, so paint accumulates
// unless a draw procedure starts by flooding a background color.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
}

// NewSurface creates a raster surface of the given pixel dimensions.
func NewSurface(width, height int) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, configErrorf("surface dimensions %dx%d are not positive", width, height)
	}
	return &Surface{dc: gg.NewContext(width, height), width: width, height: height}, nil
}

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Scale(x, y float64) { s.dc.Scale(x, y) }
func (s *Surface) Rotate(angle float64) { s.dc.Rotate(angle) }

func (s *Surface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }
func (s *Surface) SetColor(c color.Color) { s.dc.SetColor(c) }
func (s *Surface) Paint() { s.dc.Clear() }
func (s *Surface) NewPath() { s.dc.ClearPath() }
func (s *Surface) NewSubPath() { s.dc.NewSubPath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *Surface) ClosePath() { s.dc.ClosePath() }
func (s *Surface) Stroke() { s.dc.Stroke() }
func (s *Surface) Fill() { s.dc.Fill() }
func (s *Surface) Push() { s.dc.Push() }
func (s *Surface) Pop() { s.dc.Pop() }

// Size returns the pixel dimensions of the surface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Image returns the current pixel content.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// WritePNG serializes the current pixel content to a PNG file.
func (s *Surface) WritePNG(path string) error {
	return s.dc.SavePNG(path)
}
