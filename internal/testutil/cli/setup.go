package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/types"
)

// SetupCLITest returns an app over a seeded in-memory board whose "wip" list
// holds at most one card. This function is only for CLI tests and is isolated
// in a separate package to avoid import cycles.
func SetupCLITest(t *testing.T) (*app.App, *database.MemoryGateway) {
	t.Helper()

	cfg := config.Default()
	cfg.Board.Lists = nil
	for _, l := range testutil.TestLists() {
		cfg.Board.Lists = append(cfg.Board.Lists, config.ListConfig{
			ID: l.ID.String(), Name: l.Name, WIPLimit: l.WIPLimit,
		})
	}

	gw := database.NewMemoryGateway()
	a, err := app.New(context.Background(), cfg,
		app.WithGateway(gw),
		app.WithServiceOptions(
			cardservice.WithClock(testutil.FixedClock()),
			cardservice.WithIDGenerator(testutil.SequentialIDs()),
		))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a, gw
}

// Result is the captured outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns its stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
	return res.Stdout, res.Err
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content and
// both output streams captured
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// FindCard returns the card and its list from the app's current board
func FindCard(t *testing.T, testApp *app.App, id string) (models.Card, string, bool) {
	t.Helper()
	card, listID, ok := testApp.CardService.Snapshot().Find(types.CardID(id))
	return card, listID.String(), ok
}
