package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"wkt2svg/internal/geom"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		l := m.layout()
		m.mapW, m.mapH = l.mapW, l.mapH
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
		}
	case tea.KeyMsg:
		// while filtering, keys belong to the list
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "esc":
			m.inspectPopup = ""
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			l := m.layout()
			m.mapW, m.mapH = l.mapW, l.mapH
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "i":
			m.inspect()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY++
		case "down":
			m.offsetY--
		case "left":
			m.offsetX += 2
		case "right":
			m.offsetX -= 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		malformed := 0
		c, err := geom.ReadCollection(m.ctx, strings.NewReader(text), func(int, string) { malformed++ })
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setRoads(c)
		m.status = "rendered WKT  " + summary(c, malformed)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect describes the vertex nearest to the centre of the map.
func (m *Model) inspect() {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	x, y, _, _, ok := m.nearestVertex(w, h*2, w, h)
	if !ok {
		m.inspectPopup = "no road nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	b := m.roads.BBox
	m.inspectPopup = strings.Join([]string{
		"source: " + name,
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", b.MinX, b.MinY, b.MaxX, b.MaxY),
		fmt.Sprintf("lines: %d  vertices: %d", m.roads.Len(), m.roads.Vertices()),
		fmt.Sprintf("nearest: x=%.6f y=%.6f", x, y),
	}, "\n")
	m.status = "inspect"
}

// hover tracks the mouse over the map and snaps the marker to the nearest
// vertex. The layout must match View.
func (m *Model) hover(cx, cy int) {
	l := m.layout()
	if cx < l.mapX || cx >= l.mapX+l.mapW || cy < l.mapY || cy >= l.mapY+l.mapH {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	cellX, cellY := cx-l.mapX, cy-l.mapY
	m.hoverX, m.hoverY, m.hoverHasGeo = m.unproject(cellX, cellY, l.mapW, l.mapH)
	_, _, mx, my, ok := m.nearestVertex(cellX*2, cellY*4, l.mapW, l.mapH)
	m.hovering = ok
	m.hoverMicX, m.hoverMicY = mx, my
}
