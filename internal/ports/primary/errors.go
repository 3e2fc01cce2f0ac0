package primary

import "fmt"

// InvalidEntryError rejects a submitted entry that violates the rating-range
// or timestamp-format constraint. It is surfaced synchronously and always
// means the log was left unmodified.
type InvalidEntryError struct {
	Field  string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid entry: %s %s", e.Field, e.Reason)
}
