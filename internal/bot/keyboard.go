// ABOUTME: Reply keyboard layout for the Telegram front-end.
// ABOUTME: Quick-add amount buttons plus stats and undo shortcuts.
package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Quick-add buttons, largest common glass and bottle sizes.
var quickAmounts = []int{100, 200, 300, 500, 1000}

const (
	buttonStats = "Stats"
	buttonUndo  = "Undo"
)

// mainKeyboard builds the persistent reply keyboard.
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("+100"),
			tgbotapi.NewKeyboardButton("+200"),
			tgbotapi.NewKeyboardButton("+300"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("+500"),
			tgbotapi.NewKeyboardButton("+1000"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonStats),
			tgbotapi.NewKeyboardButton(buttonUndo),
		),
	)
	kb.ResizeKeyboard = true
	kb.InputFieldPlaceholder = "Pick an amount or a command"
	return kb
}

// quickAmount maps a button press like "+300" to its milliliters.
func quickAmount(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "+") {
		return 0, false
	}
	ml, err := strconv.Atoi(strings.TrimPrefix(text, "+"))
	if err != nil {
		return 0, false
	}
	for _, known := range quickAmounts {
		if ml == known {
			return ml, true
		}
	}
	return 0, false
}

// normalize lowercases and trims free-form button text.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
