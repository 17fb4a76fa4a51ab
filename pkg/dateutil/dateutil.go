package dateutil

import "time"

// AtTime returns the given date with the clock set to hour:minute:00.
func AtTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DateKey returns the calendar date formatted as YYYY-MM-DD.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD calendar date.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ParseUTCInstant parses an ISO-8601 instant with an explicit offset.
// Example: 2025-04-11T22:00:00Z
func ParseUTCInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatUTCInstant formats the instant in UTC at second precision with a
// trailing Z and no fractional seconds.
// Example: 2025-04-14T14:00:00Z
func FormatUTCInstant(date time.Time) string {
	return date.UTC().Truncate(time.Second).Format(time.RFC3339)
}
