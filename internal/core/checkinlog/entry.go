// Package checkinlog contains the pure business logic for the check-in log.
// This is part of the Functional Core - no I/O, only pure functions and the
// entry sum type every other layer consumes.
package checkinlog

import (
	"errors"
	"time"
)

// Rating bounds for a stat observation. The nine-step input scale maps to
// ratings 0 through 8.
const (
	RatingMin = 0
	RatingMax = 8
)

// ErrUnknownEntryKind reports an entry kind outside the closed set of log
// entry types. Hitting it means a caller broke the contract; it is never
// recovered silently.
var ErrUnknownEntryKind = errors.New("unknown check-in log entry kind")

// Kind discriminates the log entry union.
type Kind string

const (
	// KindStat is a rated observation of one metric.
	KindStat Kind = "stat"
	// KindSleep is a wake or went-to-sleep edge.
	KindSleep Kind = "sleep"
	// KindNote is a free-form day comment.
	KindNote Kind = "note"
)

// SleepEdge tells which side of a sleep period a SleepEvent marks.
type SleepEdge string

const (
	// EdgeWake marks waking up.
	EdgeWake SleepEdge = "wake"
	// EdgeSleep marks going to sleep.
	EdgeSleep SleepEdge = "sleep"
)

// Entry is the check-in log entry union. Exactly three types implement it:
// StatObservation, SleepEvent and NoteEntry. Consumers must switch over the
// concrete type exhaustively; adding a kind is a compile-visible change.
type Entry interface {
	Kind() Kind
	Time() time.Time

	// sealed prevents implementations outside this package.
	sealed()
}

// StatObservation is a single rated data point for one metric at one instant.
type StatObservation struct {
	Metric    string
	Rating    int
	Timestamp time.Time
	Note      string
}

// Kind returns KindStat.
func (StatObservation) Kind() Kind { return KindStat }

// Time returns the observation instant.
func (o StatObservation) Time() time.Time { return o.Timestamp }

func (StatObservation) sealed() {}

// SleepEvent records one edge of a sleep period.
type SleepEvent struct {
	Edge      SleepEdge
	Timestamp time.Time
}

// Kind returns KindSleep.
func (SleepEvent) Kind() Kind { return KindSleep }

// Time returns the event instant.
func (e SleepEvent) Time() time.Time { return e.Timestamp }

func (SleepEvent) sealed() {}

// NoteEntry is a free-form comment attached to an instant.
type NoteEntry struct {
	Note      string
	Timestamp time.Time
}

// Kind returns KindNote.
func (NoteEntry) Kind() Kind { return KindNote }

// Time returns the note instant.
func (n NoteEntry) Time() time.Time { return n.Timestamp }

func (NoteEntry) sealed() {}
