package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"wkt2svg/internal/geom"
)

type fileItem struct {
	title string
	path  string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.path }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the .wkt files of the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wkt") {
			continue
		}
		items = append(items, fileItem{title: e.Name(), path: filepath.Join(m.cwd, e.Name())})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).title < items[j].(fileItem).title })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .wkt files in current directory"
	}
}

// loadPath reads a roads file with the converter's reader.
func (m *Model) loadPath(p string) {
	malformed := 0
	c, err := geom.Load(m.ctx, p, func(int, string) { malformed++ })
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setRoads(c)
	m.status = fmt.Sprintf("loaded: %s  %s", filepath.Base(p), summary(c, malformed))
}

func summary(c *geom.Collection, malformed int) string {
	s := fmt.Sprintf("records=%d lines=%d vertices=%d", c.Records(), c.Len(), c.Vertices())
	if malformed > 0 {
		s += fmt.Sprintf(" malformed=%d", malformed)
	}
	return s
}
