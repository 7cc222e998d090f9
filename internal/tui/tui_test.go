package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	gogeom "github.com/twpayne/go-geom"

	"wkt2svg/internal/geom"
	"wkt2svg/internal/render"
)

func TestBrailleCanvas(t *testing.T) {
	b := newBrailleCanvas(2, 1)
	b.set(0, 0)
	b.set(3, 3)
	b.set(-1, 0)
	b.set(4, 0)
	got := string(b.rows()[0])
	want := string([]rune{0x2801, 0x2880})
	if got != want {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestBrailleLine(t *testing.T) {
	b := newBrailleCanvas(2, 1)
	b.line(0, 0, 3, 0)
	want := string([]rune{0x2809, 0x2809})
	if got := string(b.rows()[0]); got != want {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func squareModel() Model {
	m := Model{zoom: 1, roads: &geom.Collection{}}
	m.roads.Add(gogeom.NewLineStringFlat(gogeom.XY, []float64{0, 0, 10, 10}))
	m.frame = render.Frame{MinX: 0, MinY: 0, DX: 10, DY: 10}
	return m
}

func TestProjectCorners(t *testing.T) {
	m := squareModel()
	type pt struct{ X, Y int }
	tests := []struct {
		x, y float64
		want pt
	}{
		{0, 0, pt{0, 19}},
		{10, 10, pt{19, 0}},
		{5, 5, pt{9, 9}},
	}
	for _, tt := range tests {
		x, y, ok := m.project(tt.x, tt.y, 10, 5)
		if !ok {
			t.Fatalf("project(%v, %v) not visible", tt.x, tt.y)
		}
		if diff := cmp.Diff(tt.want, pt{x, y}); diff != "" {
			t.Errorf("project(%v, %v) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
		}
	}
}

func TestUnproject(t *testing.T) {
	m := squareModel()
	x, y, ok := m.unproject(0, 0, 10, 5)
	if !ok || x != 0 || y != 10 {
		t.Errorf("unproject(0, 0) = %v, %v, %v; want 0, 10, true", x, y, ok)
	}
	x, y, ok = m.unproject(9, 4, 10, 5)
	if !ok || x != 10 || y != 0 {
		t.Errorf("unproject(9, 4) = %v, %v, %v; want 10, 0, true", x, y, ok)
	}
}

func TestNearestVertex(t *testing.T) {
	m := squareModel()
	x, y, mx, my, ok := m.nearestVertex(18, 1, 10, 5)
	if !ok {
		t.Fatal("no vertex found")
	}
	if x != 10 || y != 10 || mx != 19 || my != 0 {
		t.Errorf("nearestVertex = (%v, %v) at (%d, %d)", x, y, mx, my)
	}

	empty := Model{zoom: 1, roads: &geom.Collection{}, frame: m.frame}
	if _, _, _, _, ok := empty.nearestVertex(0, 0, 10, 5); ok {
		t.Error("nearestVertex on empty collection reported a vertex")
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPasteRendersRecords(t *testing.T) {
	m := New(context.Background())
	next, _ := m.Update(key("p"))
	m = next.(Model)
	if !m.pasteMode {
		t.Fatal("p did not enter paste mode")
	}
	m.ta.SetValue("LINESTRING(0 0, 1 1)\n\nMULTILINESTRING((2 2, 3 3),(4 4, 5 5))")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if m.pasteMode {
		t.Errorf("still in paste mode, status %q", m.status)
	}
	if m.roads.Len() != 3 || m.roads.Records() != 2 {
		t.Errorf("roads = %d lines from %d records, want 3 from 2", m.roads.Len(), m.roads.Records())
	}
	if m.roads.BBox != (geom.BBox{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}) {
		t.Errorf("bbox = %+v", m.roads.BBox)
	}
}

func TestPasteErrorKeepsEditor(t *testing.T) {
	m := New(context.Background())
	next, _ := m.Update(key("p"))
	m = next.(Model)
	m.ta.SetValue("LINESTRING(1 2)")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if !m.pasteMode {
		t.Error("paste mode left after a parse error")
	}
	if !strings.HasPrefix(m.status, "wkt error:") {
		t.Errorf("status = %q", m.status)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.pasteMode {
		t.Error("esc did not leave paste mode")
	}
}

func writeRoads(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "roads.wkt")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadPathAndTable(t *testing.T) {
	p := writeRoads(t, "garbage\nMULTILINESTRING((0 0, 3 4),\n(1 1, 2 2))\n")
	m := NewWithPath(context.Background(), p)
	if !strings.Contains(m.status, "records=1 lines=2 vertices=4 malformed=1") {
		t.Errorf("status = %q", m.status)
	}

	next, _ := m.Update(key("a"))
	m = next.(Model)
	if !m.showTable {
		t.Fatal("a did not open the roads table")
	}
	rows := m.tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(rows))
	}
	want := []string{"1", "2", "5", "0, 0", "3, 4"}
	if diff := cmp.Diff(want, []string(rows[0])); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPathError(t *testing.T) {
	p := writeRoads(t, "LINESTRING(1 2, x)\n")
	m := NewWithPath(context.Background(), p)
	if !strings.HasPrefix(m.status, "load error:") {
		t.Errorf("status = %q", m.status)
	}
	if m.roads.Len() != 0 {
		t.Errorf("roads replaced after a failed load: %d lines", m.roads.Len())
	}
}

func TestFailedLoadKeepsSource(t *testing.T) {
	good := writeRoads(t, "LINESTRING(0 0, 3 4)\n")
	m := NewWithPath(context.Background(), good)
	m.loadPath(writeRoads(t, "LINESTRING(1 2, x)\n"))
	if m.selPath != good {
		t.Errorf("selPath = %q, want %q", m.selPath, good)
	}
	if m.roads.Len() != 1 {
		t.Errorf("roads = %d lines, want the previous 1", m.roads.Len())
	}
	m.inspect()
	if !strings.Contains(m.inspectPopup, "source: roads.wkt") {
		t.Errorf("popup = %q", m.inspectPopup)
	}
}

func TestInspectPopup(t *testing.T) {
	m := New(context.Background())
	m.setRoads(squareModel().roads)
	next, _ := m.Update(key("i"))
	m = next.(Model)
	if !strings.Contains(m.inspectPopup, "source: <pasted>") || !strings.Contains(m.inspectPopup, "nearest:") {
		t.Errorf("popup = %q", m.inspectPopup)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.inspectPopup != "" {
		t.Error("esc did not close the popup")
	}
}
