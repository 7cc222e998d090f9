package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// project maps a data coordinate into the 2x4 micro-grid of a w x h cell map,
// applying zoom around the centre and the pan offset.
func (m Model) project(x, y float64, w, h int) (int, int, bool) {
	f := m.frame
	if f.DX <= 0 || f.DY <= 0 {
		return 0, 0, false
	}
	nx := (x - f.MinX) / f.DX
	ny := (y - f.MinY) / f.DY
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy, true
}

// unproject converts a map cell back to data coordinates.
func (m Model) unproject(cx, cy, w, h int) (float64, float64, bool) {
	f := m.frame
	if f.DX <= 0 || f.DY <= 0 || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return f.MinX + nx*f.DX, f.MinY + ny*f.DY, true
}

func (m Model) renderMap(w, h int) string {
	canvas := newBrailleCanvas(w, h)
	for _, ls := range m.roads.Lines {
		var prevX, prevY int
		first := true
		for _, p := range ls.Coords() {
			mx, my, ok := m.project(p.X(), p.Y(), w, h)
			if !ok {
				continue
			}
			if first {
				canvas.set(mx, my)
				first = false
			} else {
				canvas.line(prevX, prevY, mx, my)
			}
			prevX, prevY = mx, my
		}
	}

	rows := canvas.rows()
	lines := make([]string, len(rows))
	for y, r := range rows {
		lines[y] = string(r)
	}
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(rows) && cx >= 0 && cx < len(rows[cy]) {
			marker := lipgloss.NewStyle().Foreground(hoverFg).Render("◯")
			lines[cy] = string(rows[cy][:cx]) + marker + string(rows[cy][cx+1:])
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex returns the road vertex closest to the micro-pixel (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (x, y float64, mx, my int, ok bool) {
	best := -1
	for _, ls := range m.roads.Lines {
		for _, p := range ls.Coords() {
			px, py, visible := m.project(p.X(), p.Y(), w, h)
			if !visible {
				continue
			}
			dx, dy := px-hx, py-hy
			if d := dx*dx + dy*dy; best < 0 || d < best {
				best = d
				x, y, mx, my = p.X(), p.Y(), px, py
			}
		}
	}
	return x, y, mx, my, best >= 0
}
