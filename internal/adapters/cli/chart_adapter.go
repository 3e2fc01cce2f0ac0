package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/pulse/internal/ports/primary"
)

// sparks maps ratings 0..8 to bar glyphs of increasing height.
var sparks = []rune("▁▂▃▄▅▆▇█▉")

// ChartAdapter renders gap-filled metric series as sparkline rows, one row
// per metric over the same day axis.
type ChartAdapter struct {
	service primary.CheckinService
	out     io.Writer
}

// NewChartAdapter creates a new ChartAdapter with the given service.
func NewChartAdapter(service primary.CheckinService, out io.Writer) *ChartAdapter {
	return &ChartAdapter{service: service, out: out}
}

// Render prints one sparkline per metric for [from, to). Days without an
// observation render as a gap dot so the axis stays continuous.
func (a *ChartAdapter) Render(ctx context.Context, metrics []string, from, to time.Time) error {
	points, err := a.service.GetChartSeries(ctx, primary.GetChartSeriesRequest{
		Metrics: metrics,
		From:    from.Format(time.RFC3339),
		To:      to.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to build chart series: %w", err)
	}

	if len(points) == 0 {
		fmt.Fprintln(a.out, "No days in range")
		return nil
	}

	nameWidth := 0
	for _, m := range metrics {
		if len(m) > nameWidth {
			nameWidth = len(m)
		}
	}

	for _, metric := range metrics {
		var row strings.Builder
		for _, p := range points {
			if rating, ok := p.Values[metric]; ok && rating >= 0 && rating < len(sparks) {
				row.WriteRune(sparks[rating])
			} else {
				row.WriteRune('·')
			}
		}
		fmt.Fprintf(a.out, "%-*s %s\n", nameWidth, metric, row.String())
	}

	fmt.Fprintf(a.out, "%-*s %s → %s (%d days)\n", nameWidth, "",
		points[0].Day, points[len(points)-1].Day, len(points))
	return nil
}
