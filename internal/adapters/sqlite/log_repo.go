// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/ports/secondary"
)

// StateKey is the app_state key the check-in log lives under. The name is
// part of the persisted format and predates this implementation; changing it
// orphans existing logs.
const StateKey = "statsCheckinLogState"

// LogRepository implements secondary.LogRepository with a single JSON blob
// in the app_state table.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new SQLite log repository.
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Load reads and decodes the stored log. A missing row or an undecodable
// blob yields an empty log: both are degraded-start conditions, logged and
// recovered, never surfaced as failures.
func (r *LogRepository) Load(ctx context.Context) ([]checkinlog.Entry, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", StateKey,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read check-in log state: %w", err)
	}

	entries, err := checkinlog.UnmarshalLog([]byte(value))
	if err != nil {
		slog.Warn("stored check-in log is corrupt, starting with an empty log",
			"key", StateKey, "error", err)
		return nil, nil
	}
	return entries, nil
}

// Save serializes the full log and overwrites the stored blob.
func (r *LogRepository) Save(ctx context.Context, entries []checkinlog.Entry) error {
	data, err := checkinlog.MarshalLog(entries)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		StateKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write check-in log state: %w", err)
	}
	return nil
}

// Ensure LogRepository implements the interface
var _ secondary.LogRepository = (*LogRepository)(nil)
