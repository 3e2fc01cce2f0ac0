package checkinlog

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireEntry is the persisted JSON shape of a log entry: a flat tagged object.
// Rating is a pointer so a zero rating survives the omitempty round trip.
type wireEntry struct {
	Kind      Kind      `json:"kind"`
	Metric    string    `json:"metric,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	Edge      SleepEdge `json:"edge,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// MarshalLog serializes the full log as a JSON array of tagged entries with
// RFC 3339 timestamps.
func MarshalLog(entries []Entry) ([]byte, error) {
	wire := make([]wireEntry, 0, len(entries))
	for _, e := range entries {
		switch e := e.(type) {
		case StatObservation:
			rating := e.Rating
			wire = append(wire, wireEntry{
				Kind:      KindStat,
				Metric:    e.Metric,
				Rating:    &rating,
				Note:      e.Note,
				Timestamp: e.Timestamp.Format(time.RFC3339Nano),
			})
		case SleepEvent:
			wire = append(wire, wireEntry{
				Kind:      KindSleep,
				Edge:      e.Edge,
				Timestamp: e.Timestamp.Format(time.RFC3339Nano),
			})
		case NoteEntry:
			wire = append(wire, wireEntry{
				Kind:      KindNote,
				Note:      e.Note,
				Timestamp: e.Timestamp.Format(time.RFC3339Nano),
			})
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownEntryKind, e)
		}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal check-in log: %w", err)
	}
	return data, nil
}

// UnmarshalLog parses a JSON array previously produced by MarshalLog. Any
// malformed element fails the whole decode; callers decide whether that is a
// degraded start or a hard error.
func UnmarshalLog(data []byte) ([]Entry, error) {
	var wire []wireEntry
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse check-in log: %w", err)
	}

	entries := make([]Entry, 0, len(wire))
	for i, w := range wire {
		ts, err := time.Parse(time.RFC3339Nano, w.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("entry %d: bad timestamp %q: %w", i, w.Timestamp, err)
		}

		switch w.Kind {
		case KindStat:
			if w.Rating == nil {
				return nil, fmt.Errorf("entry %d: stat observation without rating", i)
			}
			entries = append(entries, StatObservation{
				Metric:    w.Metric,
				Rating:    *w.Rating,
				Timestamp: ts,
				Note:      w.Note,
			})
		case KindSleep:
			if w.Edge != EdgeWake && w.Edge != EdgeSleep {
				return nil, fmt.Errorf("entry %d: bad sleep edge %q", i, w.Edge)
			}
			entries = append(entries, SleepEvent{Edge: w.Edge, Timestamp: ts})
		case KindNote:
			entries = append(entries, NoteEntry{Note: w.Note, Timestamp: ts})
		default:
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrUnknownEntryKind, w.Kind)
		}
	}
	return entries, nil
}
