package sqlite_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/example/pulse/internal/adapters/sqlite"
	"github.com/example/pulse/internal/core/checkinlog"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return parsed
}

func TestLoadEmptyStorage(t *testing.T) {
	repo := sqlite.NewLogRepository(setupTestDB(t))

	entries, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on empty storage must not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty log, got %d entries", len(entries))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := sqlite.NewLogRepository(setupTestDB(t))
	ctx := context.Background()

	log := []checkinlog.Entry{
		checkinlog.SleepEvent{Edge: checkinlog.EdgeWake, Timestamp: ts(t, "2024-01-01T06:45:00Z")},
		checkinlog.StatObservation{Metric: "Mood", Rating: 0, Timestamp: ts(t, "2024-01-01T08:00:00Z"), Note: "ugh"},
		checkinlog.NoteEntry{Note: "long walk", Timestamp: ts(t, "2024-01-01T19:00:00Z")},
		checkinlog.StatObservation{Metric: "Energy", Rating: 8, Timestamp: ts(t, "2024-01-02T09:00:00Z")},
	}

	if err := repo.Save(ctx, log); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got, log) {
		t.Errorf("round trip mismatch\n got: %#v\nwant: %#v", got, log)
	}
}

func TestSaveOverwritesPreviousState(t *testing.T) {
	repo := sqlite.NewLogRepository(setupTestDB(t))
	ctx := context.Background()

	first := []checkinlog.Entry{
		checkinlog.StatObservation{Metric: "Mood", Rating: 3, Timestamp: ts(t, "2024-01-01T08:00:00Z")},
	}
	second := append(first,
		checkinlog.StatObservation{Metric: "Mood", Rating: 5, Timestamp: ts(t, "2024-01-02T08:00:00Z")},
	)

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected the second save to fully replace the first, got %d entries", len(got))
	}
}

func TestLoadCorruptStateDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "not json", blob: "{{{"},
		{name: "wrong shape", blob: `{"hello":"world"}`},
		{name: "unknown entry kind", blob: `[{"kind":"workout","timestamp":"2024-01-01T08:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := setupTestDB(t)
			if _, err := database.Exec(
				"INSERT INTO app_state (key, value) VALUES (?, ?)", sqlite.StateKey, tt.blob,
			); err != nil {
				t.Fatalf("failed to seed corrupt state: %v", err)
			}

			repo := sqlite.NewLogRepository(database)
			entries, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("corrupt state must degrade, not fail: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("expected empty log, got %d entries", len(entries))
			}
		})
	}
}

func TestSaveEmptyLog(t *testing.T) {
	repo := sqlite.NewLogRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty log, got %d entries", len(entries))
	}
}
