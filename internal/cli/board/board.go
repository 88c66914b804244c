// Package board implements the "tablero board" commands.
package board

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect, export or reset the whole board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// openCLI returns the CLI for cmd and a function that closes it
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, cli.InitError(formatter, err)
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}, nil
}
