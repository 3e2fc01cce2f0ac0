package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/pulse/internal/config"
	"github.com/example/pulse/internal/core/dayspan"
	"github.com/example/pulse/internal/ports/primary"
)

// OverviewAdapter renders the day-rollup table: one row per calendar day
// with week number, weekday, sleep edges, one column per metric and the day
// comment.
type OverviewAdapter struct {
	service primary.CheckinService
	metrics []config.MetricDefinition
	out     io.Writer
}

// NewOverviewAdapter creates a new OverviewAdapter. The metric definitions
// decide column order.
func NewOverviewAdapter(service primary.CheckinService, metrics []config.MetricDefinition, out io.Writer) *OverviewAdapter {
	return &OverviewAdapter{service: service, metrics: metrics, out: out}
}

// Render prints the rollup table for [from, to).
func (a *OverviewAdapter) Render(ctx context.Context, from, to time.Time) error {
	rollups, err := a.service.GetDayRollups(ctx, primary.GetDayRollupsRequest{
		From: from.Format(time.RFC3339),
		To:   to.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to build day rollups: %w", err)
	}

	if len(rollups) == 0 {
		fmt.Fprintln(a.out, "No days in range")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "WEEK\tDAY\tDATE\tWAKEUP\tTO SLEEP")
	for _, m := range a.metrics {
		fmt.Fprintf(w, "\t%s", m.Name)
	}
	fmt.Fprint(w, "\tCOMMENT\n")

	for _, r := range rollups {
		day, err := time.Parse(dayspan.KeyFormat, r.Day)
		if err != nil {
			return fmt.Errorf("failed to parse day key %q: %w", r.Day, err)
		}
		_, week := day.ISOWeek()

		dayLabel := day.Format("Mon")
		dateLabel := day.Format("Jan 02")
		if isWeekend(day) {
			dayLabel = color.GreenString(dayLabel)
			dateLabel = color.GreenString(dateLabel)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s", week, dayLabel, dateLabel,
			formatTimeOfDay(r.WakeupTime), formatTimeOfDay(r.SleepTime))
		for _, m := range a.metrics {
			if obs, ok := r.LatestPerMetric[m.Name]; ok {
				fmt.Fprintf(w, "\t%s", ratingCell(obs.Rating))
			} else {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintf(w, "\t%s\n", r.Comment)
	}
	return w.Flush()
}

func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

// formatTimeOfDay renders an RFC 3339 instant as HH:MM, or blank when empty.
func formatTimeOfDay(value string) string {
	if value == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return value
	}
	return ts.Format("15:04")
}

// ratingCell colors a rating on the red-to-green axis of the nine-step scale.
func ratingCell(rating int) string {
	label := fmt.Sprintf("%d", rating)
	switch {
	case rating <= 2:
		return color.RedString(label)
	case rating <= 5:
		return color.YellowString(label)
	default:
		return color.GreenString(label)
	}
}
