package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
)

// isolate points config discovery at an empty directory and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"TABLERO_STORAGE_BACKEND", "TABLERO_DB_PATH", "TABLERO_REDIS_ADDR",
		"TABLERO_STORAGE_KEY", "TABLERO_LOG_LEVEL", "TABLERO_THEME_FILE",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddCard != "a" {
		t.Errorf("Default AddCard key = %s, want a", defaults.AddCard)
	}
	if defaults.MoveCardLeft != "H" || defaults.MoveCardRight != "L" {
		t.Errorf("Default move keys = %s/%s, want H/L", defaults.MoveCardLeft, defaults.MoveCardRight)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	lists := cfg.Lists()
	if len(lists) != 4 {
		t.Fatalf("default board has %d lists, want 4", len(lists))
	}
	if lists[1].ID != "wip" || lists[1].WIPLimit != 3 {
		t.Errorf("second list = %+v, want wip with limit 3", lists[1])
	}
	if lists[0].Bounded() || lists[3].Bounded() {
		t.Error("backlog and done should be unbounded")
	}
	if cfg.Storage.Backend != database.BackendSQLite {
		t.Errorf("backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != database.DefaultKey {
		t.Errorf("key = %s, want %s", cfg.Storage.Key, database.DefaultKey)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %s, want info", cfg.Log.Level)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `board:
  lists:
    - id: todo
      name: To Do
    - id: doing
      wip_limit: 1
storage:
  backend: memory
log:
  level: debug
key_mappings:
  quit: "x"
  add_card: "n"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	lists := cfg.Lists()
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}
	if lists[1].Name != "doing" {
		t.Errorf("unnamed list should fall back to its id, got %q", lists[1].Name)
	}
	if lists[1].WIPLimit != 1 {
		t.Errorf("doing limit = %d, want 1", lists[1].WIPLimit)
	}
	if cfg.Storage.Backend != database.BackendMemory {
		t.Errorf("backend = %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Log.Level)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.AddCard != "n" {
		t.Errorf("custom keys not loaded: %+v", cfg.KeyMappings)
	}
	if cfg.KeyMappings.EditCard != "e" {
		t.Errorf("Loaded EditCard key = %s, want e (default)", cfg.KeyMappings.EditCard)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: sqlite
  path: /tmp/from-file.db
`)
	t.Setenv("TABLERO_STORAGE_BACKEND", "redis")
	t.Setenv("TABLERO_REDIS_ADDR", "127.0.0.1:6380")
	t.Setenv("TABLERO_STORAGE_KEY", "team-board")
	t.Setenv("TABLERO_LOG_LEVEL", "WARN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	opts := cfg.GatewayOptions()
	want := database.Options{
		Backend:   "redis",
		Path:      "/tmp/from-file.db",
		RedisAddr: "127.0.0.1:6380",
		Key:       "team-board",
	}
	if opts != want {
		t.Errorf("GatewayOptions() = %+v, want %+v", opts, want)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %s, want warn", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate ids", "board:\n  lists:\n    - id: a\n    - id: a\n"},
		{"missing id", "board:\n  lists:\n    - name: Nameless\n"},
		{"negative limit", "board:\n  lists:\n    - id: a\n      wip_limit: -1\n"},
		{"unknown backend", "storage:\n  backend: postgres\n"},
		{"unknown log level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "board: [unterminated\n")

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "x"
	cfg.Board.Lists[1].WIPLimit = 5

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "tablero", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.Board.Lists[1].WIPLimit != 5 {
		t.Errorf("Reloaded wip limit = %d, want 5", cfg2.Board.Lists[1].WIPLimit)
	}
}
