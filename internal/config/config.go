// Package config loads converter settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"wkt2svg/internal/render"
)

// Default input and output paths, relative to the working directory.
const (
	DefaultInput  = "../data/roads.wkt"
	DefaultOutput = "../data/roads.svg"
)

// Config holds every setting of a conversion run. An empty Format is
// resolved from the output extension by the command layer.
type Config struct {
	Input  string          `toml:"input"`
	Output string          `toml:"output"`
	Format string          `toml:"format"`
	Style  render.Style    `toml:"style"`
	PNG    render.PNGStyle `toml:"png"`
}

func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Style:  render.DefaultStyle(),
		PNG:    render.DefaultPNGStyle(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path is empty
// or does not exist.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Format != "" && !render.ValidFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", c.Format)
	}
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if c.Format == render.FormatPNG {
		return c.PNG.Validate()
	}
	return nil
}
