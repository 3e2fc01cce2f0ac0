package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/pulse/internal/core/chart"
	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/core/dayspan"
	"github.com/example/pulse/internal/core/overview"
	"github.com/example/pulse/internal/ports/primary"
)

// CheckinServiceImpl implements the CheckinService interface. Writes are
// validated here and forwarded to the LogStore; reads take a snapshot and
// delegate to the pure view functions, recomputing on every call.
type CheckinServiceImpl struct {
	store *LogStore
	loc   *time.Location
}

// NewCheckinService creates a new CheckinService around the given store.
// loc decides calendar-day boundaries for the derived views; pass time.Local
// outside of tests.
func NewCheckinService(store *LogStore, loc *time.Location) *CheckinServiceImpl {
	return &CheckinServiceImpl{store: store, loc: loc}
}

// SubmitObservation validates and appends a single stat observation.
func (s *CheckinServiceImpl) SubmitObservation(ctx context.Context, req primary.SubmitObservationRequest) error {
	obs, err := buildObservation(req.Metric, req.Rating, req.Timestamp, req.Note)
	if err != nil {
		return err
	}
	return s.store.Append(ctx, obs)
}

// SubmitCheckin validates and appends a batch of entries from one check-in
// session. Validation runs over the whole batch first; one bad entry rejects
// the lot and leaves the log unmodified.
func (s *CheckinServiceImpl) SubmitCheckin(ctx context.Context, req primary.SubmitCheckinRequest) error {
	entries := make([]checkinlog.Entry, 0, len(req.Entries))
	for _, in := range req.Entries {
		entry, err := buildEntry(in)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	return s.store.AppendBatch(ctx, entries)
}

// GetLastObservation looks up the metric's observation per the established
// lookup semantics (earliest match, see checkinlog.LastObservationForMetric).
// Returns nil for a metric that never appears in the log.
func (s *CheckinServiceImpl) GetLastObservation(ctx context.Context, metric string) (*primary.Observation, error) {
	obs, ok := checkinlog.LastObservationForMetric(s.store.Snapshot(), metric)
	if !ok {
		return nil, nil
	}
	out := toObservation(obs)
	return &out, nil
}

// GetDayRollups returns one rollup per calendar day in [From, To), ascending,
// gap-filled. An inverted or empty range yields an empty result, not an error.
func (s *CheckinServiceImpl) GetDayRollups(ctx context.Context, req primary.GetDayRollupsRequest) ([]primary.DayRollup, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	buckets := overview.RollupRange(s.store.Snapshot(), from, to, s.loc)

	rollups := make([]primary.DayRollup, 0, len(buckets))
	for _, key := range dayspan.Keys(from, to, s.loc) {
		bucket := buckets[key]
		rollup := primary.DayRollup{
			Day:             bucket.Day,
			LatestPerMetric: make(map[string]primary.Observation, len(bucket.LatestPerMetric)),
			Comment:         bucket.Comment,
		}
		if bucket.WakeupTime != nil {
			rollup.WakeupTime = bucket.WakeupTime.Format(time.RFC3339Nano)
		}
		if bucket.SleepTime != nil {
			rollup.SleepTime = bucket.SleepTime.Format(time.RFC3339Nano)
		}
		for metric, obs := range bucket.LatestPerMetric {
			rollup.LatestPerMetric[metric] = toObservation(obs)
		}
		rollups = append(rollups, rollup)
	}
	return rollups, nil
}

// GetChartSeries returns the gap-filled series for the requested metrics over
// [From, To): exactly one point per calendar day, ascending.
func (s *CheckinServiceImpl) GetChartSeries(ctx context.Context, req primary.GetChartSeriesRequest) ([]primary.ChartPoint, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	series := chart.SeriesForRange(s.store.Snapshot(), req.Metrics, from, to, s.loc)

	points := make([]primary.ChartPoint, 0, len(series))
	for _, p := range series {
		points = append(points, primary.ChartPoint{Day: p.Day, Values: p.Values})
	}
	return points, nil
}

func buildObservation(metric string, rating int, timestamp, note string) (checkinlog.StatObservation, error) {
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return checkinlog.StatObservation{}, err
	}
	if rating < checkinlog.RatingMin || rating > checkinlog.RatingMax {
		return checkinlog.StatObservation{}, &primary.InvalidEntryError{
			Field:  "rating",
			Reason: fmt.Sprintf("%d is outside [%d, %d]", rating, checkinlog.RatingMin, checkinlog.RatingMax),
		}
	}
	return checkinlog.StatObservation{Metric: metric, Rating: rating, Timestamp: ts, Note: note}, nil
}

func buildEntry(in primary.CheckinEntry) (checkinlog.Entry, error) {
	switch checkinlog.Kind(in.Kind) {
	case checkinlog.KindStat:
		return buildObservation(in.Metric, in.Rating, in.Timestamp, in.Note)
	case checkinlog.KindSleep:
		ts, err := parseTimestamp(in.Timestamp)
		if err != nil {
			return nil, err
		}
		edge := checkinlog.SleepEdge(in.Edge)
		if edge != checkinlog.EdgeWake && edge != checkinlog.EdgeSleep {
			return nil, &primary.InvalidEntryError{
				Field:  "edge",
				Reason: fmt.Sprintf("%q is not %q or %q", in.Edge, checkinlog.EdgeWake, checkinlog.EdgeSleep),
			}
		}
		return checkinlog.SleepEvent{Edge: edge, Timestamp: ts}, nil
	case checkinlog.KindNote:
		ts, err := parseTimestamp(in.Timestamp)
		if err != nil {
			return nil, err
		}
		return checkinlog.NoteEntry{Note: in.Note, Timestamp: ts}, nil
	default:
		// Submitting a kind outside the union is a programming error in the
		// caller, not bad user input. Fail loudly.
		return nil, fmt.Errorf("%w: %q", checkinlog.ErrUnknownEntryKind, in.Kind)
	}
}

func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &primary.InvalidEntryError{
			Field:  "timestamp",
			Reason: fmt.Sprintf("%q is not an RFC 3339 instant", value),
		}
	}
	return ts, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad range start %q: %w", fromStr, err)
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad range end %q: %w", toStr, err)
	}
	return from, to, nil
}

func toObservation(obs checkinlog.StatObservation) primary.Observation {
	return primary.Observation{
		Metric:    obs.Metric,
		Rating:    obs.Rating,
		Timestamp: obs.Timestamp.Format(time.RFC3339Nano),
		Note:      obs.Note,
	}
}

// Ensure CheckinServiceImpl implements the interface
var _ primary.CheckinService = (*CheckinServiceImpl)(nil)
