package tui

// dotBits maps a micro-pixel (column, row) inside a braille cell to its
// Unicode dot bit. Cells are 2 dots wide and 4 dots tall.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleCanvas is a w x h cell grid addressed in micro-pixels.
type brailleCanvas struct {
	w, h  int
	cells []uint8
}

func newBrailleCanvas(w, h int) *brailleCanvas {
	return &brailleCanvas{w: w, h: h, cells: make([]uint8, w*h)}
}

// set lights the micro-pixel (mx, my); points off the canvas are ignored.
func (b *brailleCanvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.cells[cy*b.w+cx] |= dotBits[mx%2][my%4]
}

// line draws a Bresenham segment in micro-pixel space.
func (b *brailleCanvas) line(x0, y0, x1, y1 int) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows returns one string per cell row; empty cells are spaces.
func (b *brailleCanvas) rows() [][]rune {
	out := make([][]rune, b.h)
	for y := range out {
		row := make([]rune, b.w)
		for x := range row {
			if mask := b.cells[y*b.w+x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = row
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
