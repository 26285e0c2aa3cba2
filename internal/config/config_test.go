// ABOUTME: Tests for waterlog configuration management.
// ABOUTME: Covers load, save, defaults, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/waterlog/internal/models"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetDefaultGoalML(); got != models.DefaultDailyGoalML {
		t.Errorf("GetDefaultGoalML() = %d, want %d", got, models.DefaultDailyGoalML)
	}
	if got := cfg.GetDefaultTimezone(); got != "UTC" {
		t.Errorf("GetDefaultTimezone() = %q, want %q", got, "UTC")
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "info")
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestExplicitValues(t *testing.T) {
	cfg := &Config{
		DataDir:         "/tmp/waterlog-test",
		DefaultGoalML:   2500,
		DefaultTimezone: "Europe/Moscow",
		LogLevel:        "debug",
	}

	if got := cfg.GetDataDir(); got != "/tmp/waterlog-test" {
		t.Errorf("GetDataDir() = %q", got)
	}
	if got := cfg.GetDefaultGoalML(); got != 2500 {
		t.Errorf("GetDefaultGoalML() = %d", got)
	}
	if got := cfg.GetDefaultTimezone(); got != "Europe/Moscow" {
		t.Errorf("GetDefaultTimezone() = %q", got)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/waterlog", filepath.Join(home, "waterlog")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config, got nil")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		DefaultGoalML:   3000,
		DefaultTimezone: "Asia/Tokyo",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultGoalML != 3000 {
		t.Errorf("DefaultGoalML = %d, want 3000", loaded.DefaultGoalML)
	}
	if loaded.DefaultTimezone != "Asia/Tokyo" {
		t.Errorf("DefaultTimezone = %q, want Asia/Tokyo", loaded.DefaultTimezone)
	}
}

func TestBotTokenFromEnv(t *testing.T) {
	t.Setenv(EnvBotToken, "  123:abc  ")

	cfg := &Config{}
	if got := cfg.BotToken(); got != "123:abc" {
		t.Errorf("BotToken() = %q, want trimmed %q", got, "123:abc")
	}
}
