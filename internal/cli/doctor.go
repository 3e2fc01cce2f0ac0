package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/pulse/internal/config"
	"github.com/example/pulse/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the pulse environment",
		Long: `Health check for the pulse data directory and configuration.

Validates:
- Data directory (~/.pulse/)
- Database file and schema
- Metric definitions (metrics.yaml or built-in defaults)

Examples:
  pulse doctor              # Run full health check
  pulse doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkMetricConfig(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress output, exit code only")
	return cmd
}

func checkDataDir() CheckResult {
	dir, err := db.DataDir()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: err.Error()}
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return CheckResult{Name: "Data directory", Status: "⚠",
			Details: fmt.Sprintf("%s does not exist yet; it is created on first write", dir)}
	}
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Name: "Data directory", Status: "✗",
			Details: fmt.Sprintf("%s exists but is not a directory", dir)}
	}
	return CheckResult{Name: "Data directory", Status: "✓"}
}

func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: err.Error()}
	}
	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM app_state").Scan(&count)
	if err != nil {
		path, pathErr := db.GetDBPath()
		if pathErr != nil {
			path = "unknown"
		}
		return CheckResult{Name: "Database", Status: "✗",
			Details: fmt.Sprintf("%s: %v", path, err)}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

func checkMetricConfig() CheckResult {
	dir, err := db.DataDir()
	if err != nil {
		return CheckResult{Name: "Metric config", Status: "✗", Details: err.Error()}
	}
	metrics, err := config.LoadMetrics(dir)
	if err != nil {
		return CheckResult{Name: "Metric config", Status: "✗", Details: err.Error()}
	}
	if len(metrics) == 0 {
		return CheckResult{Name: "Metric config", Status: "✗", Details: "no metrics defined"}
	}
	return CheckResult{Name: "Metric config", Status: "✓"}
}
