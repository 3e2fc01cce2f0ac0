package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/wire"
)

// MetricsCmd returns the metrics command: list the configured metric
// definitions.
func MetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the configured metrics and their input scales",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLOR\tSCALE (0..8)")
			for _, m := range wire.Metrics() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Color, strings.Join(m.InputScale, " "))
			}
			return w.Flush()
		},
	}
}
