package render

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"wkt2svg/internal/geom"
)

// PNG rasterises the collection into the same frame the SVG uses, scaled so
// the longest side is p.Size pixels.
func PNG(c *geom.Collection, s Style, p PNGStyle) ([]byte, error) {
	bg, err := colorful.Hex(p.Background)
	if err != nil {
		return nil, err
	}
	stroke, err := colorful.Hex(s.Stroke)
	if err != nil {
		return nil, err
	}

	w, h := p.Size, p.Size
	var f Frame
	if !c.Empty() {
		f = NewFrame(c.BBox, s)
		if f.DX >= f.DY {
			h = max(1, int(math.Round(float64(p.Size)*f.DY/f.DX)))
		} else {
			w = max(1, int(math.Round(float64(p.Size)*f.DX/f.DY)))
		}
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()

	if !c.Empty() {
		sx := float64(w) / f.DX
		sy := float64(h) / f.DY
		project := func(x, y float64) (float64, float64) {
			return (x - f.MinX) * sx, (f.MaxY() - y) * sy
		}
		dc.SetRGBA(stroke.R, stroke.G, stroke.B, s.Opacity)
		dc.SetLineWidth(p.LineWidth)
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		for _, ls := range c.Lines {
			coords := ls.Coords()
			if len(coords) == 0 {
				continue
			}
			dc.NewSubPath()
			for i, pt := range coords {
				x, y := project(pt.X(), pt.Y())
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
