package geom

import (
	gogeom "github.com/twpayne/go-geom"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns the extent along x.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the extent along y.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Degenerate reports whether the box collapses to a single point.
func (b BBox) Degenerate() bool { return b.MinX == b.MaxX && b.MinY == b.MaxY }

// Collection is the ordered set of road lines collected from one input.
// Lines keep file order; members of a multi-geometry keep their listed order.
type Collection struct {
	Lines []*gogeom.LineString
	BBox  BBox

	records  int
	vertices int
}

// Add appends lines and grows the bounding box over their vertices.
func (c *Collection) Add(lines ...*gogeom.LineString) {
	for _, ls := range lines {
		c.Lines = append(c.Lines, ls)
		for _, p := range ls.Coords() {
			c.extend(p.X(), p.Y())
		}
	}
}

func (c *Collection) extend(x, y float64) {
	c.vertices++
	if c.vertices == 1 {
		c.BBox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < c.BBox.MinX {
		c.BBox.MinX = x
	}
	if y < c.BBox.MinY {
		c.BBox.MinY = y
	}
	if x > c.BBox.MaxX {
		c.BBox.MaxX = x
	}
	if y > c.BBox.MaxY {
		c.BBox.MaxY = y
	}
}

// Len returns the number of collected lines, empty lines included.
func (c *Collection) Len() int { return len(c.Lines) }

// Records returns the number of input records the lines came from.
func (c *Collection) Records() int { return c.records }

// Vertices returns the total vertex count over all lines.
func (c *Collection) Vertices() int { return c.vertices }

// Empty reports whether no vertex has been collected.
func (c *Collection) Empty() bool { return c.vertices == 0 }

// MultiLineString wraps every collected line, in order, into one geometry.
func (c *Collection) MultiLineString() (*gogeom.MultiLineString, error) {
	mls := gogeom.NewMultiLineString(gogeom.XY)
	for _, ls := range c.Lines {
		if err := mls.Push(ls); err != nil {
			return nil, err
		}
	}
	return mls, nil
}
