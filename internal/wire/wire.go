// Package wire provides dependency injection for the pulse application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/pulse/internal/adapters/cli"
	"github.com/example/pulse/internal/adapters/sqlite"
	"github.com/example/pulse/internal/app"
	"github.com/example/pulse/internal/config"
	"github.com/example/pulse/internal/db"
	"github.com/example/pulse/internal/ports/primary"
)

var (
	checkinService primary.CheckinService
	logStore       *app.LogStore
	metricDefs     []config.MetricDefinition
	once           sync.Once
)

// CheckinService returns the singleton CheckinService instance.
func CheckinService() primary.CheckinService {
	once.Do(initServices)
	return checkinService
}

// LogStore returns the singleton LogStore instance. Reads only; all mutation
// goes through the CheckinService.
func LogStore() *app.LogStore {
	once.Do(initServices)
	return logStore
}

// Metrics returns the loaded metric definitions.
func Metrics() []config.MetricDefinition {
	once.Do(initServices)
	return metricDefs
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dataDir, err := db.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}
	metricDefs, err = config.LoadMetrics(dataDir)
	if err != nil {
		log.Fatalf("failed to load metric definitions: %v", err)
	}

	// Secondary port adapter, then the store (loads persisted state), then
	// the service (primary port implementation).
	repo := sqlite.NewLogRepository(database)
	logStore, err = app.NewLogStore(context.Background(), repo)
	if err != nil {
		log.Fatalf("failed to initialize check-in log: %v", err)
	}
	checkinService = app.NewCheckinService(logStore, time.Local)
}

// CheckinAdapter returns a new CheckinAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CheckinAdapter() *cliadapter.CheckinAdapter {
	return CheckinAdapterWithOutput(os.Stdout)
}

// CheckinAdapterWithOutput returns a new CheckinAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func CheckinAdapterWithOutput(out io.Writer) *cliadapter.CheckinAdapter {
	once.Do(initServices)
	return cliadapter.NewCheckinAdapter(checkinService, out)
}

// OverviewAdapter returns a new OverviewAdapter writing to stdout.
func OverviewAdapter() *cliadapter.OverviewAdapter {
	return OverviewAdapterWithOutput(os.Stdout)
}

// OverviewAdapterWithOutput returns a new OverviewAdapter writing to the
// given output.
func OverviewAdapterWithOutput(out io.Writer) *cliadapter.OverviewAdapter {
	once.Do(initServices)
	return cliadapter.NewOverviewAdapter(checkinService, metricDefs, out)
}

// ChartAdapter returns a new ChartAdapter writing to stdout.
func ChartAdapter() *cliadapter.ChartAdapter {
	return ChartAdapterWithOutput(os.Stdout)
}

// ChartAdapterWithOutput returns a new ChartAdapter writing to the given
// output.
func ChartAdapterWithOutput(out io.Writer) *cliadapter.ChartAdapter {
	once.Do(initServices)
	return cliadapter.NewChartAdapter(checkinService, out)
}
