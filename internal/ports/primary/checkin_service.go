// Package primary defines the service interfaces offered to driving adapters
// (CLI, tests) along with their request/response types. Timestamps cross this
// boundary as RFC 3339 strings; parsing them is the service's job.
package primary

import "context"

// Observation is a single rated data point as exposed to consumers.
type Observation struct {
	Metric    string
	Rating    int
	Timestamp string // RFC 3339
	Note      string
}

// CheckinEntry is the submission shape of one log entry. Kind selects which
// fields apply: "stat" uses Metric/Rating/Note, "sleep" uses Edge
// ("wake" or "sleep"), "note" uses Note. Timestamp applies to all kinds.
type CheckinEntry struct {
	Kind      string
	Metric    string
	Rating    int
	Edge      string
	Note      string
	Timestamp string // RFC 3339
}

// SubmitObservationRequest records one rating for one metric.
type SubmitObservationRequest struct {
	Metric    string
	Rating    int
	Timestamp string // RFC 3339
	Note      string
}

// SubmitCheckinRequest records a batch of entries from one check-in session.
// The batch is validated as a whole: one bad entry rejects the lot and the
// log is left untouched.
type SubmitCheckinRequest struct {
	Entries []CheckinEntry
}

// GetDayRollupsRequest selects the half-open day range [From, To).
type GetDayRollupsRequest struct {
	From string // RFC 3339
	To   string // RFC 3339
}

// DayRollup is the per-day summary row of the overview table.
type DayRollup struct {
	Day             string // calendar day key, e.g. "2024-01-31"
	WakeupTime      string // RFC 3339, empty when no wake edge that day
	SleepTime       string // RFC 3339, empty when no sleep edge that day
	LatestPerMetric map[string]Observation
	Comment         string
}

// GetChartSeriesRequest selects metrics and the half-open range [From, To).
type GetChartSeriesRequest struct {
	Metrics []string
	From    string // RFC 3339
	To      string // RFC 3339
}

// ChartPoint is one chart sample: a day and the ratings observed that day.
// Values is empty (never nil) on days without observations.
type ChartPoint struct {
	Day    string
	Values map[string]int
}

// CheckinService is the single gateway to the check-in log. The two Submit
// methods are the only mutation paths; the Get methods are pure reads over
// the current snapshot.
type CheckinService interface {
	SubmitObservation(ctx context.Context, req SubmitObservationRequest) error
	SubmitCheckin(ctx context.Context, req SubmitCheckinRequest) error

	// GetLastObservation returns nil when the metric never appears in the log.
	GetLastObservation(ctx context.Context, metric string) (*Observation, error)
	GetDayRollups(ctx context.Context, req GetDayRollupsRequest) ([]DayRollup, error)
	GetChartSeries(ctx context.Context, req GetChartSeriesRequest) ([]ChartPoint, error)
}
