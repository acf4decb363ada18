package tui

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPomodoroCount reads "1 pomodoro", "3 pomodoros".
func FormatPomodoroCount(n int) string {
	if n == 1 {
		return "1 pomodoro"
	}
	return fmt.Sprintf("%d pomodoros", n)
}
