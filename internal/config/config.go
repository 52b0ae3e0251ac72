package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/mission/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ThemeFileEnv names the environment variable that points at a theme override file
const ThemeFileEnv = "MISSION_THEME_FILE"

// ErrInvalidConfig is returned when a config value cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage       StorageConfig      `yaml:"storage"`
	Notifications NotificationConfig `yaml:"notifications"`
	Log           LogConfig          `yaml:"log"`
	KeyMappings   KeyMappings        `yaml:"key_mappings"`
	ColorScheme   colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite or memory
	Path    string `yaml:"path"`    // sqlite database file
}

// NotificationConfig controls workflow banners
type NotificationConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from MISSION_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Load theme from MISSION_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate reports values that cannot be used
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: storage.backend must be %q or %q, got %q",
			ErrInvalidConfig, BackendSQLite, BackendMemory, c.Storage.Backend)
	}
	if c.Notifications.TTL < 0 {
		return fmt.Errorf("%w: notifications.ttl must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "mission", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "mission", "config.yaml"), nil
}

// dataDir returns ~/.mission, or "" when the home directory is unknown
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".mission")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Path == "" {
		if dir := dataDir(); dir != "" {
			c.Storage.Path = filepath.Join(dir, "board.db")
		} else {
			c.Storage.Backend = BackendMemory
		}
	}
	if c.Notifications.TTL == 0 {
		c.Notifications.TTL = 6 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		if dir := dataDir(); dir != "" {
			c.Log.Dir = filepath.Join(dir, "logs")
		}
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
