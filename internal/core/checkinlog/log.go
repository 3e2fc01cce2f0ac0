package checkinlog

import "sort"

// Sort re-establishes the log ordering invariant in place: non-decreasing by
// timestamp, entries with equal timestamps keep their relative order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time().Before(entries[j].Time())
	})
}

// IsSorted reports whether entries satisfy the ordering invariant.
func IsSorted(entries []Entry) bool {
	return sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Time().Before(entries[j].Time())
	})
}

// LastObservationForMetric returns the earliest stat observation for the
// given metric, or false when the metric never appears in the log.
//
// Despite the name this intentionally returns the oldest match: it filters to
// the metric, orders ascending by timestamp and takes the first entry. That is
// the behavior the rest of the product was built against, so it is kept until
// the product decides otherwise (see DESIGN.md).
func LastObservationForMetric(entries []Entry, metric string) (StatObservation, bool) {
	var matches []StatObservation
	for _, e := range entries {
		if o, ok := e.(StatObservation); ok && o.Metric == metric {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return StatObservation{}, false
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.Before(matches[j].Timestamp)
	})
	return matches[0], true
}
