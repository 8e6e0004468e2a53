package render

import (
	"admgate/internal/models"
	"fmt"
	"html/template"
	"strconv"
	"time"
)

var funcMap = template.FuncMap{
	"fmtDate": models.FormatDate,
	"timeAgo": func(s string) string {
		return models.TimeAgo(s, time.Now())
	},
	"truncate": models.Truncate,
	"pct": func(rate float64) string {
		if rate == 0 {
			return "0%"
		}
		return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
	},
	"turns": func(avg float64) string {
		if avg == 0 {
			return "0"
		}
		return strconv.FormatFloat(avg, 'f', -1, 64)
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
	"orText": func(fallback, s string) string {
		if s == "" {
			return fallback
		}
		return s
	},
	"negate": func(b bool) string {
		return fmt.Sprintf("%t", !b)
	},
}
