package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a card",
		Long:  "Delete a card by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Card ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID := cardIDArg(cmd, args)
	if cardID.IsZero() {
		return cli.UsageError(formatter, "card ID is required", "Usage: tablero card delete <id> [--force]")
	}
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	// Get card details for confirmation
	card, err := svc.GetCard(ctx, cardID)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete card %s: '%s'?", card.ID, card.Title)
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := svc.DeleteCard(ctx, cardID); err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card_id": cardID,
		})
	}

	formatter.Printf("✓ Card %s deleted successfully\n", cardID)
	reportPersistError(formatter, svc)
	return nil
}
