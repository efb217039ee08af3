package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/focusring/internal/models"
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

// FormatRecord renders one history row, e.g. "14:05  work   25m".
func FormatRecord(r models.SessionRecord) string {
	return fmt.Sprintf("%s  %-6s %s",
		r.CompletedAt.Local().Format("15:04"),
		r.Kind,
		FormatDuration(time.Duration(r.DurationSeconds)*time.Second))
}
