package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Style controls the SVG output. The defaults reproduce the classic
// notebook rendering of a multi-line geometry.
type Style struct {
	Stroke      string  `toml:"stroke"`
	Opacity     float64 `toml:"opacity"`
	WidthFactor float64 `toml:"width_factor"` // stroke-width = WidthFactor * scale
	Expand      float64 `toml:"expand"`       // margin as a fraction of the widest side
	MinSize     float64 `toml:"min_size"`
	MaxSize     float64 `toml:"max_size"`
}

// PNGStyle controls raster output.
type PNGStyle struct {
	Size       int     `toml:"size"` // longest side in pixels
	Background string  `toml:"background"`
	LineWidth  float64 `toml:"line_width"`
}

func DefaultStyle() Style {
	return Style{
		Stroke:      "#66cc99",
		Opacity:     0.8,
		WidthFactor: 2,
		Expand:      0.04,
		MinSize:     100,
		MaxSize:     300,
	}
}

func DefaultPNGStyle() PNGStyle {
	return PNGStyle{
		Size:       1024,
		Background: "#ffffff",
		LineWidth:  1.5,
	}
}

// Validate checks colors and ranges.
func (s Style) Validate() error {
	if _, err := colorful.Hex(s.Stroke); err != nil {
		return fmt.Errorf("style: stroke %q: %w", s.Stroke, err)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return fmt.Errorf("style: opacity %v out of range [0, 1]", s.Opacity)
	}
	if s.WidthFactor <= 0 {
		return fmt.Errorf("style: width_factor must be positive, got %v", s.WidthFactor)
	}
	if s.Expand < 0 {
		return fmt.Errorf("style: expand must not be negative, got %v", s.Expand)
	}
	if s.MinSize <= 0 || s.MaxSize < s.MinSize {
		return fmt.Errorf("style: invalid size range [%v, %v]", s.MinSize, s.MaxSize)
	}
	return nil
}

func (p PNGStyle) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("png: size must be positive, got %d", p.Size)
	}
	if _, err := colorful.Hex(p.Background); err != nil {
		return fmt.Errorf("png: background %q: %w", p.Background, err)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("png: line_width must be positive, got %v", p.LineWidth)
	}
	return nil
}
