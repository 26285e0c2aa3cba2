// ABOUTME: Tests for goal clamping and amount validation.
// ABOUTME: Boundary checks on the allowed daily goal range.
package models

import "testing"

func TestClampGoal(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{2000, 2000},
		{MinDailyGoalML, MinDailyGoalML},
		{MaxDailyGoalML, MaxDailyGoalML},
		{0, MinDailyGoalML},
		{199, MinDailyGoalML},
		{10001, MaxDailyGoalML},
		{-500, MinDailyGoalML},
	}

	for _, tt := range tests {
		if got := ClampGoal(tt.in); got != tt.want {
			t.Errorf("ClampGoal(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		in   int
		want bool
	}{
		{1, true},
		{500, true},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := ValidAmount(tt.in); got != tt.want {
			t.Errorf("ValidAmount(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
