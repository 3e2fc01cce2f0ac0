// Package cli wires cobra commands to the application adapters.
package cli

import (
	"fmt"
	"time"

	"github.com/example/pulse/internal/core/dayspan"
)

// parseAt resolves the --at flag. Empty means now; otherwise accepts an
// RFC 3339 instant, a local "YYYY-MM-DDTHH:MM", or a bare "HH:MM" on today.
func parseAt(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local); err == nil {
		return ts, nil
	}
	if clock, err := time.Parse("15:04", value); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (want RFC 3339, YYYY-MM-DDTHH:MM or HH:MM)", value)
}

// resolveRange turns the --days / --from / --to flags into a half-open
// [from, to) range. --from/--to take date-only values and win over --days;
// --days selects the last N calendar days including today.
func resolveRange(days int, fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	today := dayspan.Start(now, time.Local)

	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	if fromStr != "" {
		parsed, err := time.ParseInLocation(dayspan.KeyFormat, fromStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("cannot parse --from %q (want YYYY-MM-DD)", fromStr)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.ParseInLocation(dayspan.KeyFormat, toStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("cannot parse --to %q (want YYYY-MM-DD)", toStr)
		}
		// --to names the last day to show; the range end is exclusive.
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}
