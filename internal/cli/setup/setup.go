// Package setup implements "tablero setup", which writes a starter config.
package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a starter configuration file",
		Long: `Write the default configuration (four lists, sqlite storage, default keys
and theme) to the user's config directory so it can be edited.

Examples:
  # Write the config unless one exists
  tablero setup

  # Check whether a config file exists
  tablero setup --check

  # Overwrite an existing config
  tablero setup --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			path, err := config.Path()
			if err != nil {
				return cli.InitError(formatter, err)
			}

			exists, err := fileExists(path)
			if err != nil {
				return cli.InitError(formatter, err)
			}

			if checkFlag {
				if !exists {
					formatter.Printf("✗ No config file at %s\n  Run: tablero setup\n", path)
					return &cli.CodedError{Code: cli.ExitNotFound, Err: fmt.Errorf("no config file at %s", path)}
				}
				formatter.Printf("✓ Config file: %s\n", path)
				return nil
			}

			if exists && !forceFlag {
				return cli.UsageError(formatter,
					fmt.Sprintf("config file already exists: %s", path),
					"Use --force to overwrite it")
			}

			if err := config.Default().Save(); err != nil {
				return cli.InitError(formatter, err)
			}

			if formatter.JSON {
				return formatter.WriteJSON(map[string]interface{}{
					"success": true,
					"path":    path,
				})
			}
			formatter.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check whether a config file exists")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
