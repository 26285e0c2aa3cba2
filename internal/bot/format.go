// ABOUTME: Message formatting for the Telegram front-end.
// ABOUTME: Renders progress bars and reply texts from tracker aggregates.
package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/harperreed/waterlog/internal/progress"
	"github.com/harperreed/waterlog/internal/tracker"
)

const (
	startText = "Hi! I keep track of the water you drink.\n\n" +
		"Use the buttons below to log an amount, or /goal <ml> to set your daily goal.\n" +
		"Commands: /start, /help, /goal 2000, /stats, /undo"

	helpText = "How to use:\n" +
		"• Tap +100, +200, +300, +500, or +1000 to log that many milliliters.\n" +
		"• /goal 2000 sets your daily goal (in ml).\n" +
		"• /stats shows today's progress.\n" +
		"• Undo removes the last entry logged today.\n" +
		"Days roll over at midnight in your timezone."

	unknownText   = "Didn't catch that. Use the buttons or /help."
	goalUsageText = "Give the goal in milliliters, for example: /goal 2000"
	errorText     = "Something went wrong, please try again."
)

var goalPattern = regexp.MustCompile(`^\d{2,5}$`)

// parseGoal accepts a 2-5 digit milliliter goal, matching the command
// grammar rather than the storable range; clamping happens later.
func parseGoal(args string) (int, bool) {
	args = strings.TrimSpace(args)
	if !goalPattern.MatchString(args) {
		return 0, false
	}
	goal, err := strconv.Atoi(args)
	if err != nil {
		return 0, false
	}
	return goal, true
}

func progressLines(p *tracker.Progress) string {
	bar := progress.Bar(p.TotalML, p.GoalML, progress.DefaultBarWidth)
	return fmt.Sprintf("Today: %d / %d ml (%d%%)\n[%s]", p.TotalML, p.GoalML, p.Percent, bar)
}

func addedMessage(amountML int, p *tracker.Progress) string {
	return fmt.Sprintf("Added %d ml.\n%s", amountML, progressLines(p))
}

func goalMessage(p *tracker.Progress) string {
	return fmt.Sprintf("New daily goal: %d ml.\n%s", p.GoalML, progressLines(p))
}

func statsMessage(p *tracker.Progress) string {
	tail := "no entries yet"
	if len(p.Recent) > 0 {
		parts := make([]string, 0, len(p.Recent))
		for _, ml := range p.Recent {
			parts = append(parts, fmt.Sprintf("%d ml", ml))
		}
		tail = strings.Join(parts, " · ")
	}
	return fmt.Sprintf("Today's stats:\n%s\nRecent: %s", progressLines(p), tail)
}

func undoMessage(removedML int, undone bool, p *tracker.Progress) string {
	if !undone {
		return "Nothing logged today — nothing to undo."
	}
	return fmt.Sprintf("Removed %d ml.\n%s", removedML, progressLines(p))
}
