package internal

import (
	"fmt"
	"time"
)

// FormatTimestamp renders a message time the way messengers do: time of
// day for today, then increasingly coarse labels the older it gets.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := time.Now()
	days := daysBetween(t, now)
	switch {
	case days == 0:
		return t.Format("15:04")
	case days == 1:
		return "Yesterday"
	case days < 7:
		return t.Format("Mon")
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormatLastSeen renders a last-seen stamp relative to now.
func FormatLastSeen(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "Never"
	}
	now := time.Now()
	minutes := int(now.Sub(*t).Minutes())
	hours := int(now.Sub(*t).Hours())
	days := daysBetween(*t, now)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, from.Location())
	b := time.Date(ty, tm, td, 0, 0, 0, 0, to.Location())
	return int(b.Sub(a).Hours() / 24)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
