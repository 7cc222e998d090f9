// Package cli implements the wkt2svg command-line interface.
//
// Running wkt2svg without a subcommand converts ../data/roads.wkt into
// ../data/roads.svg. The convert subcommand takes explicit paths and
// formats; preview opens an interactive terminal map of a roads file.
// Logs go to stderr; stdout carries only the malformed-line diagnostics
// and the collected line count.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wkt2svg/internal/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// The root itself runs a conversion with default settings.
func (c *CLI) RootCommand() *cobra.Command {
	var opts convertOpts
	root := &cobra.Command{
		Use:           "wkt2svg",
		Short:         "Render WKT road lines as SVG",
		Long:          `wkt2svg reads LINESTRING and MULTILINESTRING records separated by blank lines and renders them as one multi-line SVG (or PNG) document.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, opts)
		},
	}
	opts.bind(root)
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", defaultConfigFile, "TOML config file (ignored when missing)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.previewCommand())
	return root
}

// Execute runs the command tree with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
