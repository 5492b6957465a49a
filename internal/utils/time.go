package utils

import (
	"strings"
	"time"
)

const (
	layoutDate   = "2006-01-02"
	layoutClock  = "15:04:05"
	layoutClockH = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// FormatDate formats a time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// ParseClock parses a time of day, accepting "15:04" or "15:04:05".
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layoutClock, s); err == nil {
		return t.Format(layoutClock), nil
	}
	t, err := time.Parse(layoutClockH, s)
	if err != nil {
		return "", err
	}
	return t.Format(layoutClock), nil
}

// DaysUntil returns whole calendar days from today until date, both truncated
// to their calendar day. Negative when the date is in the past.
func DaysUntil(today, date time.Time) int {
	a := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
