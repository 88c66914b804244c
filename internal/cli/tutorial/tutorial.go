// Package tutorial prints the tablero workflow guide.
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/tui/components"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the tablero workflow guide",
		Long: `Show how lists, WIP limits and the card commands fit together.

Use --raw for the plain markdown, e.g. to paste into notes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := tutorialContent
			if !raw {
				out = components.RenderDescription(components.DescriptionProps{
					Description: tutorialContent,
					Width:       80,
				}) + "\n"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the guide as markdown")
	return cmd
}
