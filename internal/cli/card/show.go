package card

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display all details of a card including its list, description and comment history.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Card ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID := cardIDArg(cmd, args)
	if cardID.IsZero() {
		return cli.UsageError(formatter, "card ID is required",
			"Usage: tablero card show <id> or tablero card show --id=<id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	detail, err := cliInstance.App.CardService.GetCard(ctx, cardID)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(toOutput(detail.Card, detail.ListID))
	}

	if formatter.JSON {
		out := toOutput(detail.Card, detail.ListID)
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card": map[string]interface{}{
				"id":          out.ID,
				"list":        out.List,
				"list_name":   detail.ListName,
				"position":    detail.Position,
				"title":       out.Title,
				"description": out.Description,
				"assigned":    out.Assigned,
				"priority":    out.Priority,
				"comments":    out.Comments,
			},
		})
	}

	formatter.Printf("%s\n", renderDetail(detail))
	return nil
}

// renderDetail lays out a card for the terminal
func renderDetail(detail *cardservice.CardDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(detail.ID.String() + ": " + detail.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("in " + detail.ListName))
	content.WriteString("\n\n")

	var meta []string
	for _, field := range []string{
		styles.RenderField("Assigned", detail.Assigned),
		styles.RenderField("Priority", detail.Priority),
	} {
		if field != "" {
			meta = append(meta, field)
		}
	}
	if len(meta) > 0 {
		content.WriteString(strings.Join(meta, "  "))
		content.WriteString("\n")
	}

	width := styles.CardWidth - 6
	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: detail.Description,
		Width:       width,
	}))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Comments"))
	content.WriteString("\n")
	content.WriteString(components.RenderComments(detail.Comments, width))

	return styles.RenderCard(content.String())
}
