// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/waterlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log and review your water intake
through a standardized protocol. The server communicates via stdin/stdout
and operates on the same local profile as the CLI commands.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "waterlog": {
        "command": "waterlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_water     Record a water intake in milliliters
  get_progress  Get today's progress against the daily goal
  undo_last     Remove the most recent entry logged today
  set_goal      Set the daily goal (200-10000 ml)

AVAILABLE RESOURCES:

  waterlog://today    Today's total, goal, percent, and recent entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, localExternalID)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
