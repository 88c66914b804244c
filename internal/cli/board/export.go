package board

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/database"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board in its stored JSON format",
		Long: `Write the board exactly as it is persisted: an object mapping each list id
to its array of cards.

Examples:
  tablero board export > board.json
  tablero board export --output board.json
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "File to write instead of stdout")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	data, err := database.Encode(cliInstance.App.CardService.Snapshot())
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if fmtErr := formatter.Error("EXPORT_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return &cli.CodedError{Code: cli.ExitDataErr, Err: err}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Board exported to %s\n", path)
	return nil
}
