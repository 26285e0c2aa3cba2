// ABOUTME: Root Cobra command for waterlog CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/waterlog/internal/config"
	"github.com/harperreed/waterlog/internal/progress"
	"github.com/harperreed/waterlog/internal/storage"
	"github.com/harperreed/waterlog/internal/tracker"
)

// localExternalID is the profile the CLI and the MCP server operate on.
// The Telegram front-end uses per-sender external IDs instead.
const localExternalID = "local"

var (
	cfg   *config.Config
	store *storage.DB
	svc   *tracker.Service
)

var rootCmd = &cobra.Command{
	Use:   "waterlog",
	Short: "Daily water intake tracker",
	Long: `Waterlog tracks how much water you drink against a daily goal.

Days roll over at midnight in your timezone, not UTC, so late-night
glasses land on the right day wherever you are.

QUICK START:

  $ waterlog drink 300          # Log 300 ml
  $ waterlog stats              # Today's total, goal, and recent entries
  $ waterlog undo               # Remove the last entry logged today
  $ waterlog goal 2500          # Set the daily goal (200-10000 ml)

TELEGRAM BOT:

  Run 'waterlog serve' with TELEGRAM_BOT_TOKEN set to serve the same
  tracker over Telegram. Each sender gets their own profile, goal, and
  timezone; quick buttons log +100 to +1000 ml per tap.

MCP INTEGRATION:

  Run 'waterlog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "waterlog": { "command": "waterlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Intake history lives in SQLite at ~/.local/share/waterlog/waterlog.db.
  Defaults for new profiles come from ~/.config/waterlog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		svc = tracker.New(store, cfg.GetDefaultGoalML(), cfg.GetDefaultTimezone())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// printProgress renders a tracker aggregate for terminal output.
func printProgress(p *tracker.Progress) {
	faint := color.New(color.Faint)
	bar := progress.Bar(p.TotalML, p.GoalML, progress.DefaultBarWidth)
	fmt.Printf("  %d / %d ml (%d%%)\n", p.TotalML, p.GoalML, p.Percent)
	fmt.Printf("  [%s]\n", bar)
	if len(p.Recent) > 0 {
		faint.Printf("  recent:")
		for _, ml := range p.Recent {
			faint.Printf(" %d", ml)
		}
		faint.Println(" ml")
	}
}
