// Package dayspan provides local-calendar-day arithmetic shared by the
// derived views. A "day" is a calendar day in a caller-supplied location,
// keyed by its KeyFormat string.
package dayspan

import "time"

// KeyFormat is the canonical day key layout, e.g. "2024-01-31".
const KeyFormat = "2006-01-02"

// Start returns midnight of t's calendar day in loc.
func Start(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// Key returns the day key of t's calendar day in loc.
func Key(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(KeyFormat)
}

// Keys returns the key of every calendar day in the half-open range
// [from, to), ascending. A day is in the range when its midnight falls
// before to. Empty when from >= to.
func Keys(from, to time.Time, loc *time.Location) []string {
	var keys []string
	if !from.Before(to) {
		return keys
	}
	for d := Start(from, loc); d.Before(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(KeyFormat))
	}
	return keys
}
