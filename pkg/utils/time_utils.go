package utils

import (
	"os"
	"time"
)

// App display location, resolved once from APP_TIMEZONE. Falls back to the
// host's local zone when unset or unknown.
var appLoc = func() *time.Location {
	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}()

// NormalizeClock parses a time-of-day string and renders it back as "HH:MM".
// Accepts "8:30", "08:30" and "08:30:00" style inputs.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:4", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrInvalidClockTime
}

// FormatClock trims a stored time column value down to "HH:MM".
// Postgres returns time columns as "HH:MM:SS".
func FormatClock(s string) string {
	if out, err := NormalizeClock(s); err == nil {
		return out
	}
	return s
}

// FormatDisplayDate renders an epoch-seconds timestamp for end users in the
// app timezone, e.g. "2026-08-25 14:30".
func FormatDisplayDate(unixSeconds int64) string {
	if unixSeconds <= 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).In(appLoc).Format("2006-01-02 15:04")
}
