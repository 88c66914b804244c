package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/types"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <list>",
		Short: "Move a card to another list",
		Long: `Move a card to the end of another list.

The move is refused when the destination is at its WIP limit (exit code 6).
Without --comment the card records 'Moved to "<list>".' in its history.

Examples:
  # Start work on a card
  tablero card move --id card-1 wip

  # Move with a custom history entry
  tablero card move --id card-3 review --comment "PR #42 opened"

  # JSON output for agents
  tablero card move --id card-3 done --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cmd.Flags().String("comment", "", "History entry instead of the default 'Moved to' note")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID := cardIDArg(cmd, nil)
	if cardID.IsZero() {
		return cli.UsageError(formatter, "card ID is required",
			"Usage: tablero card move --id <card> <list>")
	}
	toList := types.ListID(args[0])
	comment, _ := cmd.Flags().GetString("comment")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	var card *models.Card
	if comment != "" {
		current, getErr := svc.GetCard(ctx, cardID)
		if getErr != nil {
			return cli.HandleServiceError(formatter, getErr)
		}
		card, err = svc.RelocateCard(ctx, cardservice.RelocateCardRequest{
			CardID:     cardID,
			FromListID: current.ListID,
			ToListID:   toList,
			Fields:     current.Fields(),
			Comment:    comment,
		})
	} else {
		card, err = svc.MoveCard(ctx, cardID, toList)
	}
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    toOutput(*card, toList),
		})
	}

	formatter.Printf("✓ Card %s moved to %s\n", card.ID, listName(svc, toList))
	reportPersistError(formatter, svc)
	return nil
}
