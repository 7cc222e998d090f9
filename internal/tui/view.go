package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type screenLayout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() screenLayout {
	var l screenLayout
	l.contentW = max(10, m.width)
	l.contentH = max(4, m.height-headerHeight-footerHeight)
	side := 0
	if m.showSidebar {
		side = sidebarWidth + 1
	}
	l.mapX = side
	l.mapY = headerHeight
	l.mapW = max(10, l.contentW-side)
	l.mapH = l.contentH
	return l
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	header := titleStyle.Render(" wkt2svg ─ road preview ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	var mapView string
	switch {
	case m.showTable:
		m.tbl.SetWidth(min(l.mapW-4, 80))
		m.tbl.SetHeight(min(l.mapH-2, 20))
		box := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.renderMap(l.mapW, l.mapH))
	}

	if m.inspectPopup != "" && !m.showTable && !m.pasteMode {
		box := boxStyle.MaxWidth(max(20, min(60, l.mapW-2))).Render(m.inspectPopup)
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.5f y=%.5f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacer := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacer+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab files",
		"Enter open",
		"p paste",
		"a roads",
		"i inspect",
		"Esc close",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
