package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wkt2svg/internal/config"
	"wkt2svg/internal/pipeline"
	"wkt2svg/internal/render"
)

// defaultConfigFile is read from the working directory when present.
const defaultConfigFile = "wkt2svg.toml"

// convertOpts holds the flags shared by the root and convert commands.
// Empty values fall back to the config file, then to the defaults.
type convertOpts struct {
	input  string
	output string
	format string
}

func (o *convertOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "input WKT file (default "+config.DefaultInput+")")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default "+config.DefaultOutput+")")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: svg or png (default: png for a .png output, else svg)")
}

func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a WKT roads file to SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

// resolve layers the flags over cfg. When neither sets a format, a .png
// output selects PNG and anything else SVG.
func (o convertOpts) resolve(cfg config.Config) (config.Config, error) {
	if o.input != "" {
		cfg.Input = o.input
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format == "" {
		cfg.Format = render.FormatSVG
		if strings.EqualFold(filepath.Ext(cfg.Output), ".png") {
			cfg.Format = render.FormatPNG
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (c *CLI) runConvert(cmd *cobra.Command, opts convertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.LoadOptional(c.configPath)
	if err != nil {
		return err
	}
	cfg, err = opts.resolve(cfg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := pipeline.Run(ctx, pipeline.Options{
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
		Style:  cfg.Style,
		PNG:    cfg.PNG,
		Stdout: cmd.OutOrStdout(),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	if res.Stats.Malformed > 0 {
		logger.Warn("skipped malformed lines", "count", res.Stats.Malformed)
	}
	prog.done(fmt.Sprintf("Wrote %d roads to %s", res.Stats.Lines, cfg.Output))
	return nil
}
