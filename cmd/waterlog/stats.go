// ABOUTME: CLI command for showing today's intake progress.
// ABOUTME: Prints total, goal, percent, bar, and recent entries.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"s"},
	Short:   "Show today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := svc.Stats(localExternalID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Today (%s):\n", p.Timezone)
		printProgress(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
