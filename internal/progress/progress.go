// ABOUTME: Presentation helpers for daily goal progress.
// ABOUTME: Text progress bar and capped percentage, pure functions.
package progress

import "strings"

// DefaultBarWidth is the bar width used by the CLI and the bot.
const DefaultBarWidth = 20

// Bar renders a fixed-width progress bar like [██████░░░░░░░░░░░░░░].
// The fill is rounded to the nearest cell and capped at the full width.
func Bar(currentML, goalML, width int) string {
	if width <= 0 {
		return ""
	}
	if goalML < 1 {
		goalML = 1
	}
	filled := (currentML*width + goalML/2) / goalML
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Percent returns goal completion as an integer percentage capped at 100.
func Percent(currentML, goalML int) int {
	if goalML < 1 {
		goalML = 1
	}
	pct := (currentML*100 + goalML/2) / goalML
	if pct > 100 {
		pct = 100
	}
	return pct
}
