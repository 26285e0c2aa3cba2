// ABOUTME: CLI command for setting the daily goal.
// ABOUTME: Out-of-range goals are clamped to 200-10000 ml.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily goal in milliliters",
	Long: `Set the daily water goal in milliliters.

Goals are kept between 200 and 10000 ml; values outside that range are
clamped rather than rejected.

Examples:
  waterlog goal 2000
  waterlog goal 2500`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalML, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("goal must be a number of milliliters, got %q", args[0])
		}

		p, err := svc.SetGoal(localExternalID, goalML, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to set goal: %w", err)
		}

		color.Green("✓ Daily goal is now %d ml", p.GoalML)
		printProgress(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
}
