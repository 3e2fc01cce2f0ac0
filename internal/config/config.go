// Package config loads the static metric definitions. Definitions are
// reference data consumed once at startup; the core never mutates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/pulse/internal/core/checkinlog"
)

// ScaleSteps is the number of labels on a metric's input scale. The scale is
// indexed by rating, so ratings run 0..ScaleSteps-1.
const ScaleSteps = checkinlog.RatingMax - checkinlog.RatingMin + 1

// MetricDefinition describes one trackable metric: a unique name, a display
// color hint (opaque to the core) and the ordered labels of its input scale.
type MetricDefinition struct {
	Name       string   `yaml:"name"`
	Color      string   `yaml:"color"`
	InputScale []string `yaml:"scale"`
}

// metricsFile is the optional override file inside the data directory.
const metricsFile = "metrics.yaml"

type metricsConfig struct {
	Metrics []MetricDefinition `yaml:"metrics"`
}

// LoadMetrics reads metric definitions from dir/metrics.yaml. A missing file
// falls back to the built-in defaults; a present but invalid file is an
// error, not a silent fallback.
func LoadMetrics(dir string) ([]MetricDefinition, error) {
	data, err := os.ReadFile(filepath.Join(dir, metricsFile))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultMetrics(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", metricsFile, err)
	}

	var cfg metricsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", metricsFile, err)
	}
	if err := validateMetrics(cfg.Metrics); err != nil {
		return nil, fmt.Errorf("%s: %w", metricsFile, err)
	}
	return cfg.Metrics, nil
}

func validateMetrics(metrics []MetricDefinition) error {
	if len(metrics) == 0 {
		return fmt.Errorf("no metrics defined")
	}
	seen := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		if m.Name == "" {
			return fmt.Errorf("metric with empty name")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate metric %q", m.Name)
		}
		seen[m.Name] = true
		if len(m.InputScale) != ScaleSteps {
			return fmt.Errorf("metric %q must define exactly %d scale labels, got %d",
				m.Name, ScaleSteps, len(m.InputScale))
		}
	}
	return nil
}

// palette is the default metric color rotation.
var palette = []string{
	"#FF6633", "#FFB399", "#FF33FF", "#00B3E6", "#E6B333",
	"#3366E6", "#99FF99", "#80B300", "#66991A", "#FF99E6",
}

// DefaultMetrics returns the built-in metric set used when no metrics.yaml
// override exists.
func DefaultMetrics() []MetricDefinition {
	numeric := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	return []MetricDefinition{
		{
			Name:       "Mood",
			Color:      palette[0],
			InputScale: []string{"😭", "😩", "😰", "😓", "😐", "😕", "🙂", "😊", "😁"},
		},
		{Name: "Energy", Color: palette[1], InputScale: numeric},
		{Name: "Relaxed", Color: palette[2], InputScale: numeric},
		{Name: "Harmony", Color: palette[3], InputScale: numeric},
		{Name: "Workload", Color: palette[4], InputScale: numeric},
	}
}
