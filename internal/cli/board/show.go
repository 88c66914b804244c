package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every list with its cards and WIP usage",
		Long: `Show every list in board order with its WIP usage and cards.

Usage is shown as count/limit, or ∞ for unbounded lists. A list holding more
cards than its limit is flagged; it keeps its cards but refuses new ones.

Examples:
  tablero board show
  tablero board show --json
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// listOutput is the JSON shape of one list
type listOutput struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	WIPLimit int           `json:"wip_limit"`
	Count    int           `json:"count"`
	Usage    string        `json:"usage"`
	Exceeded bool          `json:"exceeded"`
	Cards    []models.Card `json:"cards"`
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()
	svc := cliInstance.App.CardService

	snap := svc.Snapshot()
	lists := svc.Lists()

	if formatter.Quiet {
		for _, l := range lists {
			for _, c := range snap[l.ID] {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c.ID); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if formatter.JSON {
		out := make([]listOutput, len(lists))
		for i, l := range lists {
			out[i] = listOutput{
				ID:       l.ID.String(),
				Name:     l.Name,
				WIPLimit: l.WIPLimit,
				Count:    l.Count,
				Usage:    l.Usage,
				Exceeded: l.Exceeded,
				Cards:    snap[l.ID],
			}
		}
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"lists":   out,
		})
	}

	formatter.Printf("%s\n", renderBoard(lists, snap))
	return nil
}

// renderBoard prints lists top to bottom, one line per card
func renderBoard(lists []models.ListSummary, snap models.Snapshot) string {
	var b strings.Builder
	for i, l := range lists {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.TitleStyle.Render(l.Name))
		b.WriteString(" ")
		b.WriteString(styles.RenderUsage(l))
		b.WriteString("\n")

		cards := snap[l.ID]
		if len(cards) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  (empty)"))
			b.WriteString("\n")
			continue
		}
		for _, c := range cards {
			line := fmt.Sprintf("  %s  %s", styles.SubtitleStyle.Render(c.ID.String()), c.Title)
			if c.Priority != "" {
				line += "  " + styles.LabelStyle.Render("["+c.Priority+"]")
			}
			if c.Assigned != "" {
				line += "  " + styles.SubtitleStyle.Render("@"+c.Assigned)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
