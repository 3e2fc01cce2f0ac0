// Package app implements the primary ports. It owns the process-wide log
// store and the check-in service built on top of it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/ports/secondary"
)

// LogStore owns the single source of truth: the ordered check-in log.
// It loads persisted state once at construction and mirrors every mutation
// back through the repository before the mutation returns, so an append that
// returned nil is durable. All mutation is serialized behind one mutex.
type LogStore struct {
	mu      sync.Mutex
	repo    secondary.LogRepository
	entries []checkinlog.Entry
}

// NewLogStore loads the persisted log through repo. A missing or corrupt
// blob degrades to an empty log (the repository logs the condition); only
// infrastructure failures are returned as errors.
func NewLogStore(ctx context.Context, repo secondary.LogRepository) (*LogStore, error) {
	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in log: %w", err)
	}
	if !checkinlog.IsSorted(entries) {
		slog.Warn("persisted check-in log was out of order, re-sorting")
		checkinlog.Sort(entries)
	}
	return &LogStore{repo: repo, entries: entries}, nil
}

// Append inserts one entry, re-sorts and persists before returning.
func (s *LogStore) Append(ctx context.Context, entry checkinlog.Entry) error {
	return s.AppendBatch(ctx, []checkinlog.Entry{entry})
}

// AppendBatch inserts entries, re-establishes the sort invariant (stable, so
// equal timestamps keep submission order) and persists the full log. When
// persistence fails the in-memory log is left as it was: readers never see a
// mutation that is not durable.
func (s *LogStore) AppendBatch(ctx context.Context, entries []checkinlog.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]checkinlog.Entry, 0, len(s.entries)+len(entries))
	next = append(next, s.entries...)
	next = append(next, entries...)
	checkinlog.Sort(next)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist check-in log: %w", err)
	}
	s.entries = next
	return nil
}

// Snapshot returns a copy of the log, sorted non-decreasing by timestamp.
// The copy never changes; callers wanting later writes must re-fetch.
func (s *LogStore) Snapshot() []checkinlog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]checkinlog.Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Len returns the current number of log entries.
func (s *LogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
