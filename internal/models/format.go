package models

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp in the zh-TW display form used
// throughout the dashboard. Missing or unparsable values render "-".
func FormatDate(s string) string {
	if s == "" {
		return "-"
	}
	t, ok := parseTime(s)
	if !ok {
		return "-"
	}
	return t.Format("2006/01/02 15:04")
}

// TimeAgo renders the coarse relative-time label of the activity feed.
func TimeAgo(s string, now time.Time) string {
	if s == "" {
		return "未知時間"
	}
	t, ok := parseTime(s)
	if !ok {
		return "未知時間"
	}
	diff := now.Sub(t)
	days := int(diff.Hours() / 24)
	hours := int(diff.Hours())
	minutes := int(diff.Minutes())
	switch {
	case days > 0:
		return fmt.Sprintf("%d 天前", days)
	case hours > 0:
		return fmt.Sprintf("%d 小時前", hours)
	case minutes > 0:
		return fmt.Sprintf("%d 分鐘前", minutes)
	default:
		return "剛剛"
	}
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut. Rune-based so multibyte summaries never split.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
