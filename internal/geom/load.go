package geom

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadCollection reads every record from r, parses it and collects the
// resulting lines in input order. Malformed lines go to onMalformed, which may
// be nil. The first record that fails to parse aborts the read.
func ReadCollection(ctx context.Context, r io.Reader, onMalformed MalformedFunc) (*Collection, error) {
	rd := NewReader(r, WithMalformedFunc(onMalformed))
	c := &Collection{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, err
		}
		lines, err := ParseRecord(rec.Text)
		if err != nil {
			return nil, &RecordError{Line: rec.Line, Err: err}
		}
		c.records++
		c.Add(lines...)
	}
}

// Load reads a roads file. The file is closed before Load returns.
func Load(ctx context.Context, path string, onMalformed MalformedFunc) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ReadCollection(ctx, f, onMalformed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
