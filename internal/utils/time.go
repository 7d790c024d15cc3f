package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// IsFutureDate reports whether the date (YYYY-MM-DD) lies after today.
func IsFutureDate(s string) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	today, _ := ParseDate(FormatDate(time.Now()))
	return t.After(today)
}
