package tui

import (
	"context"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"wkt2svg/internal/geom"
	"wkt2svg/internal/render"
)

// Model is the road preview. It shows one collection at a time, either
// loaded from a file or pasted as WKT records.
type Model struct {
	ctx context.Context

	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// file sidebar
	cwd     string
	l       list.Model
	selPath string

	// data
	roads *geom.Collection
	frame render.Frame

	// map size from the last resize (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64

	// roads table
	showTable bool
	tbl       table.Model
}

func New(ctx context.Context) Model {
	m := Model{
		ctx:         ctx,
		helpVisible: true,
		zoom:        1.0,
		status:      "wkt2svg preview ready",
		roads:       &geom.Collection{},
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Roads files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste LINESTRING / MULTILINESTRING records separated by blank lines. Ctrl+S to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a roads file at launch. An empty path starts with an
// empty map.
func NewWithPath(ctx context.Context, path string) Model {
	m := New(ctx)
	if path != "" {
		m.loadPath(path)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setRoads installs c and resets the view so it fills the map.
func (m *Model) setRoads(c *geom.Collection) {
	m.roads = c
	m.frame = render.NewFrame(c.BBox, render.DefaultStyle())
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	if m.showTable {
		m.refreshTable()
	}
}
