package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/wire"
)

// LogCmd returns the log command: dump the raw check-in log. Debugging aid;
// the overview and chart commands are the curated views.
func LogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Dump the raw check-in log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := wire.LogStore().Snapshot()
			if len(entries) == 0 {
				fmt.Println("Log is empty")
				return nil
			}

			for _, e := range entries {
				ts := e.Time().Format(time.RFC3339)
				switch e := e.(type) {
				case checkinlog.StatObservation:
					fmt.Printf("%s  stat   %s = %d", ts, e.Metric, e.Rating)
					if e.Note != "" {
						fmt.Printf("  (%s)", e.Note)
					}
					fmt.Println()
				case checkinlog.SleepEvent:
					fmt.Printf("%s  sleep  %s\n", ts, e.Edge)
				case checkinlog.NoteEntry:
					fmt.Printf("%s  note   %s\n", ts, e.Note)
				default:
					return fmt.Errorf("%w: %T", checkinlog.ErrUnknownEntryKind, e)
				}
			}
			return nil
		},
	}
}
