// Package chart builds chart-ready time series from a log snapshot.
// Pure functions only; rendering belongs to the adapters.
package chart

import (
	"sort"
	"time"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/core/dayspan"
)

// Point is one x-axis sample: a calendar day with the ratings observed that
// day. Days without observations carry an empty (non-nil) Values map so the
// series has one point per day and chart axes stay continuous.
type Point struct {
	// Day is the calendar day key, dayspan.KeyFormat.
	Day string
	// Values maps metric name to rating for metrics observed that day.
	Values map[string]int
}

// SeriesForRange builds the series for the metrics in metricFilter over the
// half-open range [start, end): one Point per local calendar day, ascending,
// no gaps. Multiple observations of one metric on one day collapse to the
// first one in log order; which entry wins a same-day tie is deliberately
// unspecified for callers. start >= end yields an empty series.
func SeriesForRange(entries []checkinlog.Entry, metricFilter []string, start, end time.Time, loc *time.Location) []Point {
	keys := dayspan.Keys(start, end, loc)
	if len(keys) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(metricFilter))
	for _, m := range metricFilter {
		wanted[m] = true
	}

	var observations []checkinlog.StatObservation
	for _, e := range entries {
		o, ok := e.(checkinlog.StatObservation)
		if !ok || !wanted[o.Metric] {
			continue
		}
		if o.Timestamp.Before(start) || !o.Timestamp.Before(end) {
			continue
		}
		observations = append(observations, o)
	}
	// Stable ascending order keeps insertion order on equal timestamps, so
	// "first encountered" is well defined even on ties.
	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Timestamp.Before(observations[j].Timestamp)
	})

	byDay := make(map[string]map[string]int)
	seen := make(map[[2]string]bool)
	for _, o := range observations {
		day := dayspan.Key(o.Timestamp, loc)
		pair := [2]string{o.Metric, day}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		if byDay[day] == nil {
			byDay[day] = make(map[string]int)
		}
		byDay[day][o.Metric] = o.Rating
	}

	points := make([]Point, 0, len(keys))
	for _, key := range keys {
		values := byDay[key]
		if values == nil {
			values = make(map[string]int)
		}
		points = append(points, Point{Day: key, Values: values})
	}
	return points
}
