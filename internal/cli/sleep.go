package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/wire"
)

// SleepCmd returns the sleep command for recording wake / went-to-sleep edges.
func SleepCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "sleep wake|sleep",
		Short: "Record a wakeup or went-to-sleep event",
		Long: `Record one edge of a sleep period.

Examples:
  pulse sleep wake            # just woke up
  pulse sleep sleep --at 23:45`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edge := strings.ToLower(args[0])
			if edge != string(checkinlog.EdgeWake) && edge != string(checkinlog.EdgeSleep) {
				return fmt.Errorf("edge must be %q or %q, got %q",
					checkinlog.EdgeWake, checkinlog.EdgeSleep, args[0])
			}
			ts, err := parseAt(at)
			if err != nil {
				return err
			}
			return wire.CheckinAdapter().Sleep(cmd.Context(), edge, ts)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "timestamp of the event (default: now)")
	return cmd
}

// NoteCmd returns the note command for recording a day comment.
func NoteCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "note TEXT",
		Short: "Record a free-form note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseAt(at)
			if err != nil {
				return err
			}
			return wire.CheckinAdapter().Note(cmd.Context(), strings.Join(args, " "), ts)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "timestamp of the note (default: now)")
	return cmd
}

// LastCmd returns the last command: look up a metric's observation.
func LastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last METRIC",
		Short: "Show the stored observation for a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CheckinAdapter().Last(cmd.Context(), args[0])
		},
	}
}
