package utils

import (
	"fmt"
	"time"
)

var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatDateTimeID formats t as "15 Okt 2026 14:05" in local time.
func FormatDateTimeID(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.In(time.Local)
	return fmt.Sprintf("%d %s %d %02d:%02d", t.Day(), shortMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
