package render

import (
	"math"

	"wkt2svg/internal/geom"
)

// Frame is the user-space window and pixel size an output is drawn into.
type Frame struct {
	MinX, MinY float64
	DX, DY     float64 // extents of the window in data units
	Width      float64 // pixel width
	Height     float64 // pixel height
	Scale      float64 // data units per pixel
}

// MaxY returns the top edge of the window.
func (f Frame) MaxY() float64 { return f.MinY + f.DY }

// NewFrame fits a frame around b. The box grows by s.Expand of its widest
// side; a single point grows by one unit in every direction.
func NewFrame(b geom.BBox, s Style) Frame {
	minX, minY, maxX, maxY := b.MinX, b.MinY, b.MaxX, b.MaxY
	if b.Degenerate() {
		minX, minY, maxX, maxY = minX-1, minY-1, maxX+1, maxY+1
	} else {
		pad := math.Max(b.Width(), b.Height()) * s.Expand
		minX, minY, maxX, maxY = minX-pad, minY-pad, maxX+pad, maxY+pad
	}
	f := Frame{MinX: minX, MinY: minY, DX: maxX - minX, DY: maxY - minY}
	f.Width = clamp(f.DX, s.MinSize, s.MaxSize)
	f.Height = clamp(f.DY, s.MinSize, s.MaxSize)
	f.Scale = 1
	if d := math.Max(f.Width, f.Height); d > 0 {
		f.Scale = math.Max(f.DX, f.DY) / d
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
