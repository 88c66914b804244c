// Package card implements the "tablero card" commands.
package card

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/types"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CommentCmd())

	return cmd
}

// cardOutput is the JSON shape of a card in command output
type cardOutput struct {
	ID          string           `json:"id"`
	List        string           `json:"list"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Assigned    string           `json:"assigned"`
	Priority    string           `json:"priority"`
	Comments    []models.Comment `json:"comments"`
}

// GetID lets quiet mode print just the id
func (c cardOutput) GetID() string {
	return c.ID
}

func toOutput(card models.Card, listID types.ListID) cardOutput {
	comments := card.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	return cardOutput{
		ID:          card.ID.String(),
		List:        listID.String(),
		Title:       card.Title,
		Description: card.Description,
		Assigned:    card.Assigned,
		Priority:    card.Priority,
		Comments:    comments,
	}
}

// addFieldFlags registers the editable card fields on cmd
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Card title")
	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().String("assigned", "", "Assignee")
	cmd.Flags().String("priority", "", "Priority (Baja, Media, Alta, Crítica or any label)")
}

// fieldsFromFlags overlays the field flags the user set on base
func fieldsFromFlags(cmd *cobra.Command, base models.CardFields) models.CardFields {
	if cmd.Flags().Changed("title") {
		base.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		base.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("assigned") {
		base.Assigned, _ = cmd.Flags().GetString("assigned")
	}
	if cmd.Flags().Changed("priority") {
		p, _ := cmd.Flags().GetString("priority")
		base.Priority = cli.NormalizePriority(p)
	}
	return base
}

// cardIDArg reads the card id from the first positional argument or --id
func cardIDArg(cmd *cobra.Command, args []string) types.CardID {
	if len(args) > 0 {
		return types.CardID(strings.TrimSpace(args[0]))
	}
	id, _ := cmd.Flags().GetString("id")
	return types.CardID(strings.TrimSpace(id))
}

// listName returns the display name of listID on the board
func listName(svc cardservice.Service, listID types.ListID) string {
	for _, l := range svc.Lists() {
		if l.ID == listID {
			return l.Name
		}
	}
	return listID.String()
}

// warnIfExceeded prints a notice when listID is over its WIP limit
func warnIfExceeded(formatter *cli.OutputFormatter, svc cardservice.Service, listID types.ListID) {
	for _, l := range svc.Lists() {
		if l.ID == listID && l.Exceeded {
			formatter.Printf("⚠ %s is over its WIP limit (%s)\n", l.Name, l.Usage)
		}
	}
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

// reportPersistError warns when the last save failed but the change was applied
func reportPersistError(formatter *cli.OutputFormatter, svc cardservice.Service) {
	if err := svc.LastPersistError(); err != nil {
		slog.Warn("change applied but not saved", "error", err)
		formatter.Printf("⚠ change applied but not saved: %v\n", err)
	}
}
