package card

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/types"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a new card at the end of a list.

Creation is not limited by WIP: a list pushed over its limit is reported
as exceeded, and cards can still be moved out of it.

Examples:
  # Minimal card in the backlog
  tablero card create --list backlog --title "Write release notes"

  # Full card with a first comment
  tablero card create --list wip --title "Fix login" --assigned Ana \
    --priority alta --description "Users are logged out after 5 minutes" \
    --comment "Reported by support"

  # Quiet mode for bash capture
  CARD_ID=$(tablero card create --list backlog --title "Spike" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("list", "", "List ID (required)")
	if err := cmd.MarkFlagRequired("list"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	addFieldFlags(cmd)
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("comment", "", "Initial comment")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	listFlag, _ := cmd.Flags().GetString("list")
	comment, _ := cmd.Flags().GetString("comment")
	listID := types.ListID(listFlag)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	card, err := svc.CreateCard(ctx, cardservice.CreateCardRequest{
		ListID:  listID,
		Fields:  fieldsFromFlags(cmd, models.CardFields{}),
		Comment: comment,
	})
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(toOutput(*card, listID))
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    toOutput(*card, listID),
		})
	}

	formatter.Printf("✓ Card %s created in %s\n", card.ID, listName(svc, listID))
	formatter.Printf("  Title: %s\n", card.Title)
	warnIfExceeded(formatter, svc, listID)
	reportPersistError(formatter, svc)
	return nil
}
