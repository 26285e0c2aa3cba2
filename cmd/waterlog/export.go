// ABOUTME: CLI command for exporting intake data.
// ABOUTME: Dumps users, settings, and events as JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all intake data",
	Long: `Export every user, settings row, and intake event as a backup dump.

Examples:
  waterlog export                      # JSON to stdout
  waterlog export --format yaml        # YAML to stdout
  waterlog export -o backup.json       # JSON to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch exportFormat {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %q (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Printf("Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
