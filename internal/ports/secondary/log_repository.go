// Package secondary defines the driven ports: interfaces the application
// core needs implemented by infrastructure adapters.
package secondary

import (
	"context"

	"github.com/example/pulse/internal/core/checkinlog"
)

// LogRepository persists the check-in log as one blob under a fixed key.
//
// Load returns an empty log (nil, nil) when no state exists or the stored
// blob cannot be decoded; a corrupt blob is a degraded-start condition worth
// logging, never a fatal error. Save rewrites the whole log; when it fails
// the triggering mutation is not durable and must not become observable.
type LogRepository interface {
	Load(ctx context.Context) ([]checkinlog.Entry, error)
	Save(ctx context.Context, entries []checkinlog.Entry) error
}
