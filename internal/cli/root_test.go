package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wkt2svg/internal/config"
	"wkt2svg/internal/render"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roads.wkt")
	out := filepath.Join(dir, "roads.svg")
	if err := os.WriteFile(in, []byte("garbage\nMULTILINESTRING((0 0, 1 1),(2 2, 3 3))\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, stderr, err := execute(t, "convert", "-i", in, "-o", out, "--config", "")
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, stderr)
	}
	if stdout != "Error: garbage\n2\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "Wrote 2 roads") {
		t.Errorf("stderr missing progress line: %q", stderr)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRootRunsConversionWithFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roads.wkt")
	out := filepath.Join(dir, "roads.svg")
	os.WriteFile(in, []byte("LINESTRING(0 0, 1 1)"), 0o644)
	stdout, _, err := execute(t, "-i", in, "-o", out, "--config", "")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "1\n" {
		t.Errorf("stdout = %q, want %q", stdout, "1\n")
	}
}

func TestConvertParseErrorFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roads.wkt")
	os.WriteFile(in, []byte("LINESTRING(1 2, abc)\n"), 0o644)
	if _, _, err := execute(t, "convert", "-i", in, "-o", filepath.Join(dir, "out.svg"), "--config", ""); err == nil {
		t.Error("convert succeeded on malformed coordinates")
	}
}

func TestConvertInvalidFormat(t *testing.T) {
	if _, _, err := execute(t, "convert", "-f", "pdf", "--config", ""); err == nil {
		t.Error("convert accepted format pdf")
	}
}

func TestConvertOptsResolve(t *testing.T) {
	fromFile := func(output, format string) config.Config {
		cfg := config.Default()
		cfg.Output = output
		cfg.Format = format
		return cfg
	}
	tests := []struct {
		name       string
		opts       convertOpts
		cfg        config.Config
		wantFormat string
		wantOutput string
	}{
		{"defaults", convertOpts{}, config.Default(), render.FormatSVG, config.DefaultOutput},
		{"png by extension", convertOpts{output: "map.PNG"}, config.Default(), render.FormatPNG, "map.PNG"},
		{"explicit format wins", convertOpts{output: "map.png", format: "SVG"}, config.Default(), render.FormatSVG, "map.png"},
		{"png by configured extension", convertOpts{}, fromFile("map.png", ""), render.FormatPNG, "map.png"},
		{"configured format wins", convertOpts{}, fromFile("map.png", render.FormatSVG), render.FormatSVG, "map.png"},
		{"flag output over configured png", convertOpts{output: "map.svg"}, fromFile("map.png", ""), render.FormatSVG, "map.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.resolve(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got.Format != tt.wantFormat || got.Output != tt.wantOutput {
				t.Errorf("resolve() = %q, %q; want %q, %q", got.Format, got.Output, tt.wantFormat, tt.wantOutput)
			}
		})
	}
}

func TestConfigFileApplied(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roads.wkt")
	out := filepath.Join(dir, "roads.svg")
	cfgPath := filepath.Join(dir, "wkt2svg.toml")
	os.WriteFile(in, []byte("LINESTRING(0 0, 1 1)\n"), 0o644)
	os.WriteFile(cfgPath, []byte("input = \""+filepath.ToSlash(in)+"\"\noutput = \""+filepath.ToSlash(out)+"\"\n[style]\nstroke = \"#123456\"\n"), 0o644)
	if _, _, err := execute(t, "--config", cfgPath); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `stroke="#123456"`) {
		t.Error("configured stroke not used")
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "wkt2svg version dev") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestConfiguredPNGOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roads.wkt")
	out := filepath.Join(dir, "roads.png")
	cfgPath := filepath.Join(dir, "wkt2svg.toml")
	os.WriteFile(in, []byte("LINESTRING(0 0, 1 1)\n"), 0o644)
	os.WriteFile(cfgPath, []byte("input = \""+filepath.ToSlash(in)+"\"\noutput = \""+filepath.ToSlash(out)+"\"\n"), 0o644)
	if _, _, err := execute(t, "--config", cfgPath); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG: %q", data[:min(len(data), 16)])
	}
}
