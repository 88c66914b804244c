package card

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
)

// CommentCmd returns the card comment subcommand
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <text>",
		Short: "Append a comment to a card",
		Long: `Append a timestamped comment to a card's history. Other fields are kept.

Examples:
  tablero card comment --id card-3 "Deployed to staging"
  tablero card comment --id card-3 --text "Waiting on review"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runComment,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cmd.Flags().String("text", "", "Comment text (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runComment(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID := cardIDArg(cmd, nil)
	text, _ := cmd.Flags().GetString("text")
	if len(args) > 0 {
		text = args[0]
	}
	if cardID.IsZero() || strings.TrimSpace(text) == "" {
		return cli.UsageError(formatter, "card ID and comment text are required",
			`Usage: tablero card comment --id <card> "text"`)
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	current, err := svc.GetCard(ctx, cardID)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	card, err := svc.EditCard(ctx, cardservice.EditCardRequest{
		CardID:  cardID,
		Fields:  current.Fields(),
		Comment: text,
	})
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	added := card.Comments[len(card.Comments)-1]

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card_id": card.ID,
			"comment": added,
		})
	}

	formatter.Printf("✓ Comment added to %s\n", card.ID)
	formatter.Printf("  [%s] %s\n", added.Timestamp, added.Text)
	reportPersistError(formatter, svc)
	return nil
}
