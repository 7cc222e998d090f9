// Package pipeline runs the read -> parse -> render -> write conversion.
//
// Run is the single entry point used by the CLI:
//
//	res, err := pipeline.Run(ctx, pipeline.Options{
//	    Input:  "../data/roads.wkt",
//	    Output: "../data/roads.svg",
//	    Stdout: os.Stdout,
//	})
//
// Malformed input lines are reported on Stdout as "Error: <line>" and
// skipped. Any record that fails to parse aborts the run before the output
// file is opened.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"wkt2svg/internal/geom"
	"wkt2svg/internal/render"
)

// Options configures one conversion.
type Options struct {
	Input  string
	Output string
	Format string // render.FormatSVG (default) or render.FormatPNG
	Style  render.Style
	PNG    render.PNGStyle

	// Stdout receives malformed-line diagnostics and the line count.
	Stdout io.Writer
	Logger *log.Logger
}

// Result is what a successful run produced.
type Result struct {
	Collection *geom.Collection
	Bytes      int
	Stats      Stats
}

// Stats holds counters and timings of a run.
type Stats struct {
	Records    int
	Lines      int
	Vertices   int
	Malformed  int
	ReadTime   time.Duration
	RenderTime time.Duration
}

func (o *Options) setDefaults() {
	if o.Format == "" {
		o.Format = render.FormatSVG
	}
	if o.Style == (render.Style{}) {
		o.Style = render.DefaultStyle()
	}
	if o.PNG == (render.PNGStyle{}) {
		o.PNG = render.DefaultPNGStyle()
	}
	if o.Stdout == nil {
		o.Stdout = io.Discard
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Run converts opts.Input into opts.Output.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	logger := opts.Logger
	var stats Stats

	start := time.Now()
	logger.Debug("reading roads", "input", opts.Input)
	c, err := geom.Load(ctx, opts.Input, func(line int, text string) {
		stats.Malformed++
		logger.Debug("malformed line", "line", line)
		fmt.Fprintf(opts.Stdout, "Error: %s\n", text)
	})
	if err != nil {
		return nil, err
	}
	stats.ReadTime = time.Since(start)
	stats.Records = c.Records()
	stats.Lines = c.Len()
	stats.Vertices = c.Vertices()
	logger.Debug("collected roads", "records", stats.Records, "lines", stats.Lines, "vertices", stats.Vertices)

	start = time.Now()
	data, err := render.Render(c, opts.Format, opts.Style, opts.PNG)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	stats.RenderTime = time.Since(start)

	fmt.Fprintln(opts.Stdout, c.Len())
	if err := writeFile(opts.Output, data); err != nil {
		return nil, err
	}
	logger.Debug("wrote output", "output", opts.Output, "bytes", len(data))

	return &Result{Collection: c, Bytes: len(data), Stats: stats}, nil
}

// writeFile truncates path and writes data; the file is closed on every path.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
