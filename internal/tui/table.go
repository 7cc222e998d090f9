package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	gogeom "github.com/twpayne/go-geom"
)

// refreshTable rebuilds the roads table from the current collection.
func (m *Model) refreshTable() {
	if m.roads.Len() == 0 {
		m.showTable = false
		m.status = "no roads loaded"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "vertices", Width: 8},
		{Title: "length", Width: 12},
		{Title: "start", Width: 22},
		{Title: "end", Width: 22},
	}
	rows := make([]table.Row, 0, m.roads.Len())
	for i, ls := range m.roads.Lines {
		rows = append(rows, roadRow(i, ls))
	}
	// clear rows first so a narrower column set never sees stale cells
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func roadRow(i int, ls *gogeom.LineString) table.Row {
	start, end := "-", "-"
	if n := ls.NumCoords(); n > 0 {
		start = formatCoord(ls.Coord(0))
		end = formatCoord(ls.Coord(n - 1))
	}
	return table.Row{
		strconv.Itoa(i + 1),
		strconv.Itoa(ls.NumCoords()),
		strconv.FormatFloat(ls.Length(), 'g', 6, 64),
		start,
		end,
	}
}

func formatCoord(c gogeom.Coord) string {
	return fmt.Sprintf("%.5g, %.5g", c.X(), c.Y())
}
