package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/wire"
)

// OverviewCmd returns the overview command: the per-day rollup table.
func OverviewCmd() *cobra.Command {
	var (
		days    int
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the day-by-day log overview table",
		Long: `Render one row per calendar day: week, weekday, wakeup and went-to-sleep
times, the latest rating per metric and the day's comment. Days without
entries still get a row so the calendar has no holes.

Examples:
  pulse overview                 # last 7 days
  pulse overview --days 30
  pulse overview --from 2024-01-01 --to 2024-01-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveRange(days, fromStr, toStr)
			if err != nil {
				return err
			}
			return wire.OverviewAdapter().Render(cmd.Context(), from, to)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days to show, ending today")
	cmd.Flags().StringVar(&fromStr, "from", "", "first day to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "last day to show (YYYY-MM-DD)")
	return cmd
}

// ChartCmd returns the chart command: sparkline series per metric.
func ChartCmd() *cobra.Command {
	var (
		days    int
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "chart [METRIC...]",
		Short: "Chart metric ratings over a day range",
		Long: `Render one sparkline per metric over a continuous day axis. At most one
rating per metric per day is plotted; days without an observation show a gap.

Examples:
  pulse chart                  # all configured metrics, last 14 days
  pulse chart Mood Energy --days 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := args
			if len(metrics) == 0 {
				for _, m := range wire.Metrics() {
					metrics = append(metrics, m.Name)
				}
			}
			from, to, err := resolveRange(days, fromStr, toStr)
			if err != nil {
				return err
			}
			return wire.ChartAdapter().Render(cmd.Context(), metrics, from, to)
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "number of days to chart, ending today")
	cmd.Flags().StringVar(&fromStr, "from", "", "first day to chart (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "last day to chart (YYYY-MM-DD)")
	return cmd
}
