package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/cli"
	"github.com/example/pulse/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "pulse",
		Short:   "pulse - personal wellness check-in tracker",
		Version: version.String(),
		Long: `pulse tracks subjective wellness metrics (mood, energy, ...), sleep events
and notes in an append-only log, and renders them as day overviews and charts.`,
	}

	// Write side
	rootCmd.AddCommand(cli.CheckinCmd())
	rootCmd.AddCommand(cli.RateCmd())
	rootCmd.AddCommand(cli.SleepCmd())
	rootCmd.AddCommand(cli.NoteCmd())

	// Read side
	rootCmd.AddCommand(cli.LastCmd())
	rootCmd.AddCommand(cli.OverviewCmd())
	rootCmd.AddCommand(cli.ChartCmd())
	rootCmd.AddCommand(cli.MetricsCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
