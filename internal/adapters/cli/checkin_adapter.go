// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all log semantics to the service.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/ports/primary"
)

// CheckinAdapter translates write-side CLI operations to CheckinService
// calls. It depends only on the service interface, enabling tests with mocks.
type CheckinAdapter struct {
	service primary.CheckinService
	out     io.Writer
}

// NewCheckinAdapter creates a new CheckinAdapter with the given service.
func NewCheckinAdapter(service primary.CheckinService, out io.Writer) *CheckinAdapter {
	return &CheckinAdapter{service: service, out: out}
}

// Rate records one observation for one metric.
func (a *CheckinAdapter) Rate(ctx context.Context, metric string, rating int, at time.Time, note string) error {
	err := a.service.SubmitObservation(ctx, primary.SubmitObservationRequest{
		Metric:    metric,
		Rating:    rating,
		Timestamp: at.Format(time.RFC3339),
		Note:      note,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded %s = %d at %s\n", metric, rating, at.Format("Mon Jan 2 15:04"))
	return nil
}

// Checkin records a full check-in session: several ratings sharing one
// timestamp, plus an optional note.
func (a *CheckinAdapter) Checkin(ctx context.Context, ratings map[string]int, at time.Time, note string) error {
	ts := at.Format(time.RFC3339)
	entries := make([]primary.CheckinEntry, 0, len(ratings)+1)
	for metric, rating := range ratings {
		entries = append(entries, primary.CheckinEntry{
			Kind:      string(checkinlog.KindStat),
			Metric:    metric,
			Rating:    rating,
			Timestamp: ts,
		})
	}
	if note != "" {
		entries = append(entries, primary.CheckinEntry{
			Kind:      string(checkinlog.KindNote),
			Note:      note,
			Timestamp: ts,
		})
	}

	if err := a.service.SubmitCheckin(ctx, primary.SubmitCheckinRequest{Entries: entries}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Checked in %d rating(s) at %s\n", len(ratings), at.Format("Mon Jan 2 15:04"))
	return nil
}

// Sleep records a wake or went-to-sleep edge.
func (a *CheckinAdapter) Sleep(ctx context.Context, edge string, at time.Time) error {
	err := a.service.SubmitCheckin(ctx, primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{{
			Kind:      string(checkinlog.KindSleep),
			Edge:      edge,
			Timestamp: at.Format(time.RFC3339),
		}},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded %s at %s\n", edge, at.Format("Mon Jan 2 15:04"))
	return nil
}

// Note records a free-form day comment.
func (a *CheckinAdapter) Note(ctx context.Context, text string, at time.Time) error {
	err := a.service.SubmitCheckin(ctx, primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{{
			Kind:      string(checkinlog.KindNote),
			Note:      text,
			Timestamp: at.Format(time.RFC3339),
		}},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "✓ Noted")
	return nil
}

// Last prints the metric's observation per the log's lookup semantics.
func (a *CheckinAdapter) Last(ctx context.Context, metric string) error {
	obs, err := a.service.GetLastObservation(ctx, metric)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", metric, err)
	}
	if obs == nil {
		fmt.Fprintf(a.out, "No observations for %s\n", metric)
		return nil
	}

	ts, err := time.Parse(time.RFC3339Nano, obs.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to parse observation timestamp: %w", err)
	}
	fmt.Fprintf(a.out, "%s = %d (%s)\n", obs.Metric, obs.Rating, ts.Format("Mon Jan 2 15:04"))
	if obs.Note != "" {
		fmt.Fprintf(a.out, "  note: %s\n", obs.Note)
	}
	return nil
}
