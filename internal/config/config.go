// ABOUTME: Waterlog configuration management with profile defaults.
// ABOUTME: Handles settings, data paths, and the storage factory function.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/waterlog/internal/models"
	"github.com/harperreed/waterlog/internal/storage"
)

// EnvBotToken is the environment variable holding the Telegram bot
// token. The token is never written to the config file.
const EnvBotToken = "TELEGRAM_BOT_TOKEN"

// Config stores waterlog configuration.
type Config struct {
	// DataDir is the root directory for data storage; waterlog.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/waterlog.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultGoalML is the daily goal applied to new profiles, in milliliters.
	DefaultGoalML int `json:"default_goal_ml,omitempty"`

	// DefaultTimezone is the IANA zone applied to new profiles.
	DefaultTimezone string `json:"default_timezone,omitempty"`

	// LogLevel controls daemon logging: debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultGoalML returns the configured default goal, defaulting to 2000 ml.
func (c *Config) GetDefaultGoalML() int {
	if c.DefaultGoalML == 0 {
		return models.DefaultDailyGoalML
	}
	return c.DefaultGoalML
}

// GetDefaultTimezone returns the configured default zone, defaulting to UTC.
func (c *Config) GetDefaultTimezone() string {
	if c.DefaultTimezone == "" {
		return "UTC"
	}
	return c.DefaultTimezone
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// BotToken reads the Telegram bot token from the environment.
func (c *Config) BotToken() string {
	return strings.TrimSpace(os.Getenv(EnvBotToken))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store under the configured data directory.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "waterlog.db"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "waterlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
