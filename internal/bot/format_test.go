// ABOUTME: Tests for Telegram message formatting and input parsing.
// ABOUTME: Quick-button mapping, goal grammar, and reply texts.
package bot

import (
	"strings"
	"testing"

	"github.com/harperreed/waterlog/internal/tracker"
)

func TestQuickAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"+100", 100, true},
		{"+200", 200, true},
		{"+1000", 1000, true},
		{" +500 ", 500, true},
		{"+250", 0, false},
		{"100", 0, false},
		{"+abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := quickAmount(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("quickAmount(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseGoal(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2000", 2000, true},
		{" 250 ", 250, true},
		{"99", 99, true},
		{"9", 0, false},
		{"123456", 0, false},
		{"20oo", 0, false},
		{"", 0, false},
		{"-200", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseGoal(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseGoal(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatsMessage(t *testing.T) {
	p := &tracker.Progress{TotalML: 1000, GoalML: 2000, Percent: 50, Recent: []int{500, 300, 200}}

	msg := statsMessage(p)
	for _, want := range []string{"1000 / 2000 ml", "(50%)", "500 ml · 300 ml · 200 ml"} {
		if !strings.Contains(msg, want) {
			t.Errorf("statsMessage missing %q:\n%s", want, msg)
		}
	}
}

func TestStatsMessageEmptyDay(t *testing.T) {
	p := &tracker.Progress{GoalML: 2000}

	msg := statsMessage(p)
	if !strings.Contains(msg, "no entries yet") {
		t.Errorf("expected empty-day tail, got:\n%s", msg)
	}
}

func TestAddedMessage(t *testing.T) {
	p := &tracker.Progress{TotalML: 300, GoalML: 2000, Percent: 15}

	msg := addedMessage(300, p)
	if !strings.Contains(msg, "Added 300 ml") {
		t.Errorf("unexpected message:\n%s", msg)
	}
	if !strings.Contains(msg, "[") || !strings.Contains(msg, "░") {
		t.Errorf("expected a progress bar:\n%s", msg)
	}
}

func TestUndoMessage(t *testing.T) {
	p := &tracker.Progress{TotalML: 500, GoalML: 2000, Percent: 25}

	if msg := undoMessage(500, true, p); !strings.Contains(msg, "Removed 500 ml") {
		t.Errorf("unexpected undo message:\n%s", msg)
	}
	if msg := undoMessage(0, false, p); !strings.Contains(msg, "nothing to undo") {
		t.Errorf("unexpected empty-undo message:\n%s", msg)
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("  Stats "); got != "stats" {
		t.Errorf("normalize = %q, want %q", got, "stats")
	}
}
