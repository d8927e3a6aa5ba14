package cmd

import (
	"fmt"

	"animalsctl/internal/cli"
	"animalsctl/internal/screen"

	"github.com/spf13/cobra"
)

func newPrinter(cmd *cobra.Command, format string) (*cli.Printer, error) {
	f, err := cli.ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), f), nil
}

// settled turns a screen that did not load into the command's error. The
// message is the one the terminal UI shows for the same screen.
func settled[T any](s screen.State[T]) error {
	switch s.Phase {
	case screen.PhaseLoaded:
		return nil
	case screen.PhaseFailed:
		return fmt.Errorf("%s (%s)", s.Message, s.Kind)
	default:
		return fmt.Errorf("%s", s.Message)
	}
}
