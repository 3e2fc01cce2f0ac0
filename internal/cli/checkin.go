package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/wire"
)

// CheckinCmd returns the checkin command: a full check-in session where
// several metrics are rated at one shared instant.
func CheckinCmd() *cobra.Command {
	var (
		at    string
		rates []string
		note  string
	)

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record a check-in session (several ratings at one instant)",
		Long: `Record one check-in session: rate several metrics at a shared timestamp,
optionally with a note for the day.

Examples:
  pulse checkin --rate Mood=6 --rate Energy=4
  pulse checkin --at 08:30 --rate Mood=7 --note "slept well"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rates) == 0 {
				return fmt.Errorf("nothing to record: pass at least one --rate METRIC=RATING")
			}

			ratings := make(map[string]int, len(rates))
			for _, r := range rates {
				metric, value, ok := strings.Cut(r, "=")
				if !ok {
					return fmt.Errorf("bad --rate %q: want METRIC=RATING", r)
				}
				rating, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("bad --rate %q: rating must be a number", r)
				}
				ratings[metric] = rating
			}

			ts, err := parseAt(at)
			if err != nil {
				return err
			}
			return wire.CheckinAdapter().Checkin(cmd.Context(), ratings, ts, note)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "timestamp of the session (default: now)")
	cmd.Flags().StringArrayVar(&rates, "rate", nil, "metric rating as METRIC=RATING (repeatable)")
	cmd.Flags().StringVar(&note, "note", "", "day comment to attach to the session")
	return cmd
}

// RateCmd returns the rate command: a single observation for one metric.
func RateCmd() *cobra.Command {
	var (
		at   string
		note string
	)

	cmd := &cobra.Command{
		Use:   "rate METRIC RATING",
		Short: "Record a single observation for one metric",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number, got %q", args[1])
			}
			ts, err := parseAt(at)
			if err != nil {
				return err
			}
			return wire.CheckinAdapter().Rate(cmd.Context(), args[0], rating, ts, note)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "timestamp of the observation (default: now)")
	cmd.Flags().StringVar(&note, "note", "", "note to attach to the observation")
	return cmd
}
