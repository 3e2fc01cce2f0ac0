package app

import (
	"context"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/ports/secondary"
)

// Ensure mockLogRepository implements the interface
var _ secondary.LogRepository = (*mockLogRepository)(nil)

// mockLogRepository implements secondary.LogRepository for testing.
type mockLogRepository struct {
	stored  []checkinlog.Entry
	loadErr error
	saveErr error

	saveCalls int
	lastSaved []checkinlog.Entry
}

func newMockLogRepository(initial ...checkinlog.Entry) *mockLogRepository {
	return &mockLogRepository{stored: initial}
}

func (m *mockLogRepository) Load(ctx context.Context) ([]checkinlog.Entry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]checkinlog.Entry, len(m.stored))
	copy(out, m.stored)
	return out, nil
}

func (m *mockLogRepository) Save(ctx context.Context, entries []checkinlog.Entry) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastSaved = make([]checkinlog.Entry, len(entries))
	copy(m.lastSaved, entries)
	m.stored = m.lastSaved
	return nil
}
