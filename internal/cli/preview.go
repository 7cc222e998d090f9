package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wkt2svg/internal/config"
	"wkt2svg/internal/tui"
)

func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Browse a WKT roads file as a terminal map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("preview needs an interactive terminal")
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else if cfg, err := config.LoadOptional(c.configPath); err == nil {
				path = cfg.Input
			}
			m := tui.NewWithPath(cmd.Context(), path)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
