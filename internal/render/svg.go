package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	gogeom "github.com/twpayne/go-geom"

	"wkt2svg/internal/geom"
)

// SVG renders the collection as one multi-line geometry. Polyline points
// keep the input coordinates; the viewBox and a y-flipping transform map
// them onto the page.
func SVG(c *geom.Collection, s Style) ([]byte, error) {
	mls, err := c.MultiLineString()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	if c.Empty() {
		canvas.Startraw()
		canvas.End()
		return buf.Bytes(), nil
	}

	f := NewFrame(c.BBox, s)
	canvas.Startraw(
		fmt.Sprintf(`width="%s"`, num(f.Width)),
		fmt.Sprintf(`height="%s"`, num(f.Height)),
		fmt.Sprintf(`viewBox="%s %s %s %s"`, num(f.MinX), num(f.MinY), num(f.DX), num(f.DY)),
		`preserveAspectRatio="xMinYMin meet"`,
	)
	canvas.Gtransform(fmt.Sprintf("matrix(1,0,0,-1,0,%s)", num(f.MaxY()+f.MinY)))
	canvas.Group(`class="roads"`)
	width := num(s.WidthFactor * f.Scale)
	for i := 0; i < mls.NumLineStrings(); i++ {
		ls := mls.LineString(i)
		if ls.NumCoords() == 0 {
			continue
		}
		fmt.Fprintf(canvas.Writer, `<polyline fill="none" stroke="%s" stroke-width="%s" points="%s" opacity="%s" />`+"\n",
			s.Stroke, width, points(ls), num(s.Opacity))
	}
	canvas.Gend()
	canvas.Gend()
	canvas.End()
	return buf.Bytes(), nil
}

func points(ls *gogeom.LineString) string {
	var b strings.Builder
	for i, p := range ls.Coords() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X()))
		b.WriteByte(',')
		b.WriteString(num(p.Y()))
	}
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
