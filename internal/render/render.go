// Package render turns a road collection into an output document.
package render

import (
	"fmt"

	"wkt2svg/internal/geom"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatSVG: true, FormatPNG: true}

// Render dispatches to the renderer for format.
func Render(c *geom.Collection, format string, s Style, p PNGStyle) ([]byte, error) {
	switch format {
	case "", FormatSVG:
		return SVG(c, s)
	case FormatPNG:
		return PNG(c, s, p)
	}
	return nil, fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", format)
}
