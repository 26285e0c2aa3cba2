// ABOUTME: CLI command for removing the last entry logged today.
// ABOUTME: Best-effort undo; a day with no entries is not an error.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the last entry logged today",
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, undone, p, err := svc.Undo(localExternalID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to undo: %w", err)
		}

		if !undone {
			fmt.Println("Nothing logged today — nothing to undo.")
			return nil
		}

		color.Green("✓ Removed %d ml", removed)
		printProgress(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
