// ABOUTME: CLI command for logging a water intake.
// ABOUTME: Validates the amount and prints updated daily progress.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var drinkCmd = &cobra.Command{
	Use:     "drink <ml>",
	Aliases: []string{"d", "add"},
	Short:   "Log a water intake",
	Long: `Log a water intake in milliliters.

Examples:
  waterlog drink 300
  waterlog d 250`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amountML, err := strconv.Atoi(args[0])
		if err != nil || amountML <= 0 {
			return fmt.Errorf("amount must be a positive number of milliliters, got %q", args[0])
		}

		p, err := svc.Drink(localExternalID, amountML, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to log intake: %w", err)
		}

		color.Green("✓ Added %d ml", amountML)
		printProgress(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drinkCmd)
}
