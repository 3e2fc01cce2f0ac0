// Package overview contains the pure day-rollup logic behind the log
// overview table. No I/O; every function is a pure view of a log snapshot.
package overview

import (
	"time"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/core/dayspan"
)

// DayBucket is the per-day summary of a calendar day: sleep edges, the latest
// rating per metric and the day comment. Days without entries produce an
// empty bucket so a calendar can be rendered without holes.
type DayBucket struct {
	// Day is the calendar day key, dayspan.KeyFormat.
	Day string
	// WakeupTime is the first wake edge of the day, nil when none.
	WakeupTime *time.Time
	// SleepTime is the first went-to-sleep edge of the day, nil when none.
	SleepTime *time.Time
	// LatestPerMetric holds, per metric, the observation with the greatest
	// timestamp that day.
	LatestPerMetric map[string]checkinlog.StatObservation
	// Comment is the text of the last note entry that day, empty when none.
	Comment string
}

// RollupRange buckets the log per local calendar day over [from, to).
// Every day in the range gets a bucket, however sparse the log; entries whose
// day falls outside the range are ignored. from >= to yields an empty map.
func RollupRange(entries []checkinlog.Entry, from, to time.Time, loc *time.Location) map[string]DayBucket {
	buckets := make(map[string]DayBucket)
	for _, key := range dayspan.Keys(from, to, loc) {
		buckets[key] = DayBucket{
			Day:             key,
			LatestPerMetric: make(map[string]checkinlog.StatObservation),
		}
	}
	if len(buckets) == 0 {
		return buckets
	}

	// Walk in timestamp order so "first edge" and "last note" fall out of
	// plain overwrite rules.
	ordered := make([]checkinlog.Entry, len(entries))
	copy(ordered, entries)
	checkinlog.Sort(ordered)

	for _, e := range ordered {
		key := dayspan.Key(e.Time(), loc)
		bucket, ok := buckets[key]
		if !ok {
			continue
		}

		switch e := e.(type) {
		case checkinlog.StatObservation:
			bucket.LatestPerMetric[e.Metric] = e
		case checkinlog.SleepEvent:
			at := e.Timestamp
			switch e.Edge {
			case checkinlog.EdgeWake:
				if bucket.WakeupTime == nil {
					bucket.WakeupTime = &at
				}
			case checkinlog.EdgeSleep:
				if bucket.SleepTime == nil {
					bucket.SleepTime = &at
				}
			}
		case checkinlog.NoteEntry:
			bucket.Comment = e.Note
		}

		buckets[key] = bucket
	}
	return buckets
}
