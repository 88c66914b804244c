package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/types"
)

// EditCmd returns the card edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a card's fields, optionally moving it and adding a comment",
		Long: `Overwrite the fields given as flags; fields not given keep their value.

With --list the card is also relocated. Moving to another list is refused
when that list is at its WIP limit (exit code 6); nothing is changed then.

Examples:
  # Retitle a card
  tablero card edit card-3 --title "Auth module v2"

  # Record progress
  tablero card edit --id card-3 --comment "Deployed"

  # Edit and move in one step
  tablero card edit card-2 --list review --priority Alta --comment "Ready"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("id", "", "Card ID (can also be provided as positional argument)")
	addFieldFlags(cmd)
	cmd.Flags().String("list", "", "Move the card to this list")
	cmd.Flags().String("comment", "", "Comment to append")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID := cardIDArg(cmd, args)
	if cardID.IsZero() {
		return cli.UsageError(formatter, "card ID is required",
			"Usage: tablero card edit <id> [--title ...] [--comment ...]")
	}
	comment, _ := cmd.Flags().GetString("comment")
	listFlag, _ := cmd.Flags().GetString("list")

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
	fields := fieldsFromFlags(cmd, current.Fields())

	var card *models.Card
	listID := current.ListID
	if cmd.Flags().Changed("list") {
		listID = types.ListID(listFlag)
		card, err = svc.RelocateCard(ctx, cardservice.RelocateCardRequest{
			CardID:     cardID,
			FromListID: current.ListID,
			ToListID:   listID,
			Fields:     fields,
			Comment:    comment,
		})
	} else {
		card, err = svc.EditCard(ctx, cardservice.EditCardRequest{
			CardID:  cardID,
			Fields:  fields,
			Comment: comment,
		})
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
			"card":    toOutput(*card, listID),
		})
	}

	formatter.Printf("✓ Card %s updated\n", card.ID)
	if listID != current.ListID {
		formatter.Printf("  Moved to %s\n", listName(svc, listID))
	}
	reportPersistError(formatter, svc)
	return nil
}
