package geom

import (
	"errors"
	"fmt"
	"strings"

	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

var (
	// ErrUnsupportedGeometry is returned for records that decode to anything
	// other than a LINESTRING or MULTILINESTRING.
	ErrUnsupportedGeometry = errors.New("wkt: unsupported geometry type")

	// ErrTooFewPoints is returned for a non-empty line with a single vertex.
	ErrTooFewPoints = errors.New("wkt: line must have zero or at least two points")
)

// ParseRecord strictly decodes one finalized record into road lines.
// A MULTILINESTRING yields its members in listed order; a LINESTRING yields
// exactly one line. Returned lines always use the XY layout.
func ParseRecord(text string) ([]*gogeom.LineString, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("wkt: empty record")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		if member := singlePointGroup(s); member > 0 {
			if isMulti(s) {
				return nil, fmt.Errorf("member %d: %w", member, ErrTooFewPoints)
			}
			return nil, ErrTooFewPoints
		}
		return nil, err
	}
	switch g := g.(type) {
	case *gogeom.LineString:
		return []*gogeom.LineString{toXY(g)}, nil
	case *gogeom.MultiLineString:
		out := make([]*gogeom.LineString, 0, g.NumLineStrings())
		for i := 0; i < g.NumLineStrings(); i++ {
			out = append(out, toXY(g.LineString(i)))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
}

// singlePointGroup returns the 1-based member index of the first coordinate
// list holding exactly one vertex, or 0. The decoder rejects such lines with
// a plain syntax error.
func singlePointGroup(s string) int {
	depth, member, open := 0, 1, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			open = i
		case ')':
			if open >= 0 {
				body := strings.TrimSpace(s[open+1 : i])
				if body != "" && !strings.Contains(body, ",") {
					return member
				}
			}
			open = -1
			depth--
		case ',':
			if depth == 1 {
				member++
			}
		}
	}
	return 0
}

func isMulti(s string) bool {
	return len(s) >= 5 && strings.EqualFold(s[:5], "MULTI")
}

// toXY drops Z/M ordinates so every line can join one XY multi-line.
func toXY(ls *gogeom.LineString) *gogeom.LineString {
	n := ls.NumCoords()
	switch {
	case n == 0:
		return gogeom.NewLineString(gogeom.XY)
	case ls.Layout() == gogeom.XY:
		return ls
	}
	flat := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		c := ls.Coord(i)
		flat = append(flat, c.X(), c.Y())
	}
	return gogeom.NewLineStringFlat(gogeom.XY, flat)
}
