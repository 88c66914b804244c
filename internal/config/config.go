// Package config loads tablero's YAML configuration and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ErrInvalid wraps every configuration validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Board       BoardConfig        `yaml:"board"`
	Storage     StorageConfig      `yaml:"storage"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// BoardConfig lists the board's columns in display order
type BoardConfig struct {
	Lists []ListConfig `yaml:"lists"`
}

// ListConfig configures one list; a zero WIPLimit means unbounded
type ListConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	WIPLimit int    `yaml:"wip_limit"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Backend   string `yaml:"backend"`
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	Key       string `yaml:"key"`
}

// LogConfig controls the log file verbosity
type LogConfig struct {
	Level string `yaml:"level"`
}

// envOverrides are read from the environment after the file
type envOverrides struct {
	StorageBackend string `env:"TABLERO_STORAGE_BACKEND"`
	DBPath         string `env:"TABLERO_DB_PATH"`
	RedisAddr      string `env:"TABLERO_REDIS_ADDR"`
	StorageKey     string `env:"TABLERO_STORAGE_KEY"`
	LogLevel       string `env:"TABLERO_LOG_LEVEL"`
	ThemeFile      string `env:"TABLERO_THEME_FILE"`
}

// DefaultLists returns the four-list board used when none is configured
func DefaultLists() []ListConfig {
	return []ListConfig{
		{ID: "backlog", Name: "Backlog"},
		{ID: "wip", Name: "In Progress", WIPLimit: 3},
		{ID: "review", Name: "Review", WIPLimit: 2},
		{ID: "done", Name: "Done"},
	}
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory, then applies
// environment overrides. Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		configPath = ""
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path; an empty or missing path yields defaults
func LoadFile(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	config.applyEnv(overrides)

	if err := loadThemeFile(&config, overrides.ThemeFile); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks the board and storage sections
func (c *Config) Validate() error {
	if len(c.Board.Lists) == 0 {
		return fmt.Errorf("%w: board needs at least one list", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Board.Lists))
	for i, l := range c.Board.Lists {
		if strings.TrimSpace(l.ID) == "" {
			return fmt.Errorf("%w: list %d has no id", ErrInvalid, i+1)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate list id %q", ErrInvalid, l.ID)
		}
		seen[l.ID] = true
		if l.WIPLimit < 0 {
			return fmt.Errorf("%w: list %q has negative wip_limit %d", ErrInvalid, l.ID, l.WIPLimit)
		}
	}

	switch c.Storage.Backend {
	case database.BackendSQLite, database.BackendRedis, database.BackendMemory:
	default:
		return fmt.Errorf("%w: storage backend %q", ErrInvalid, c.Storage.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Lists converts the board section into domain lists
func (c *Config) Lists() []models.List {
	out := make([]models.List, len(c.Board.Lists))
	for i, l := range c.Board.Lists {
		out[i] = models.List{ID: types.ListID(l.ID), Name: l.Name, WIPLimit: l.WIPLimit}
	}
	return out
}

// GatewayOptions returns the storage section as database options
func (c *Config) GatewayOptions() database.Options {
	return database.Options{
		Backend:   c.Storage.Backend,
		Path:      c.Storage.Path,
		RedisAddr: c.Storage.RedisAddr,
		Key:       c.Storage.Key,
	}
}

func (c *Config) applyEnv(o envOverrides) {
	if o.StorageBackend != "" {
		c.Storage.Backend = o.StorageBackend
	}
	if o.DBPath != "" {
		c.Storage.Path = o.DBPath
	}
	if o.RedisAddr != "" {
		c.Storage.RedisAddr = o.RedisAddr
	}
	if o.StorageKey != "" {
		c.Storage.Key = o.StorageKey
	}
	if o.LogLevel != "" {
		c.Log.Level = strings.ToLower(o.LogLevel)
	}
}

// loadThemeFile merges a standalone theme file over the configured colors
func loadThemeFile(config *Config, themeFile string) error {
	if themeFile == "" {
		return nil
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		return fmt.Errorf("failed to parse theme file: %w", err)
	}

	config.ColorScheme.Override(themeConfig.Theme)
	return nil
}

// Path returns where Load looks for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if len(c.Board.Lists) == 0 {
		c.Board.Lists = DefaultLists()
	}
	for i := range c.Board.Lists {
		if c.Board.Lists[i].Name == "" {
			c.Board.Lists[i].Name = c.Board.Lists[i].ID
		}
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = database.BackendSQLite
	}
	if c.Storage.Key == "" {
		c.Storage.Key = database.DefaultKey
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
