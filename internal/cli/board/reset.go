package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the sample cards",
		Long:  "Discard every card and load the sample board (requires confirmation unless --force or --quiet).",
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	if !force && !formatter.Quiet {
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Replace every card with the sample board?") {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := svc.Reset(ctx); err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"cards":   svc.Snapshot().CardCount(),
		})
	}

	formatter.Printf("✓ Board reset to sample data (%d cards)\n", svc.Snapshot().CardCount())
	return nil
}
