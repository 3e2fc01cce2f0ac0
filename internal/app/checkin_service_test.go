package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/pulse/internal/core/checkinlog"
	"github.com/example/pulse/internal/ports/primary"
)

func newTestService(t *testing.T, initial ...checkinlog.Entry) (*CheckinServiceImpl, *mockLogRepository) {
	t.Helper()
	repo := newMockLogRepository(initial...)
	store, err := NewLogStore(context.Background(), repo)
	if err != nil {
		t.Fatalf("NewLogStore: %v", err)
	}
	return NewCheckinService(store, time.UTC), repo
}

func TestSubmitObservation(t *testing.T) {
	service, repo := newTestService(t)

	err := service.SubmitObservation(context.Background(), primary.SubmitObservationRequest{
		Metric:    "Energy",
		Rating:    5,
		Timestamp: "2024-01-01T10:00:00Z",
		Note:      "after coffee",
	})
	if err != nil {
		t.Fatalf("SubmitObservation: %v", err)
	}

	if len(repo.lastSaved) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", len(repo.lastSaved))
	}
	saved := repo.lastSaved[0].(checkinlog.StatObservation)
	if saved.Metric != "Energy" || saved.Rating != 5 || saved.Note != "after coffee" {
		t.Errorf("persisted observation = %+v", saved)
	}
}

func TestSubmitObservationValidation(t *testing.T) {
	tests := []struct {
		name      string
		req       primary.SubmitObservationRequest
		wantField string
	}{
		{
			name:      "rating above range",
			req:       primary.SubmitObservationRequest{Metric: "Energy", Rating: 12, Timestamp: "2024-01-01T10:00:00Z"},
			wantField: "rating",
		},
		{
			name:      "rating below range",
			req:       primary.SubmitObservationRequest{Metric: "Energy", Rating: -1, Timestamp: "2024-01-01T10:00:00Z"},
			wantField: "rating",
		},
		{
			name:      "timestamp not RFC 3339",
			req:       primary.SubmitObservationRequest{Metric: "Energy", Rating: 5, Timestamp: "01/01/2024 10:00"},
			wantField: "timestamp",
		},
		{
			name:      "empty timestamp",
			req:       primary.SubmitObservationRequest{Metric: "Energy", Rating: 5},
			wantField: "timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)

			err := service.SubmitObservation(context.Background(), tt.req)

			var invalid *primary.InvalidEntryError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidEntryError, got %v", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("field = %q, want %q", invalid.Field, tt.wantField)
			}
			if repo.saveCalls != 0 {
				t.Error("rejected entry must leave the log unmodified")
			}
		})
	}
}

func TestSubmitObservationBoundaryRatings(t *testing.T) {
	for _, rating := range []int{0, 8} {
		service, _ := newTestService(t)
		err := service.SubmitObservation(context.Background(), primary.SubmitObservationRequest{
			Metric:    "Mood",
			Rating:    rating,
			Timestamp: "2024-01-01T10:00:00Z",
		})
		if err != nil {
			t.Errorf("rating %d should be accepted: %v", rating, err)
		}
	}
}

func TestSubmitCheckin(t *testing.T) {
	service, repo := newTestService(t)

	err := service.SubmitCheckin(context.Background(), primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{
			{Kind: "stat", Metric: "Mood", Rating: 6, Timestamp: "2024-01-01T08:00:00Z"},
			{Kind: "stat", Metric: "Energy", Rating: 4, Timestamp: "2024-01-01T08:00:00Z"},
			{Kind: "sleep", Edge: "wake", Timestamp: "2024-01-01T06:45:00Z"},
			{Kind: "note", Note: "slept badly", Timestamp: "2024-01-01T08:00:00Z"},
		},
	})
	if err != nil {
		t.Fatalf("SubmitCheckin: %v", err)
	}

	if len(repo.lastSaved) != 4 {
		t.Fatalf("expected 4 persisted entries, got %d", len(repo.lastSaved))
	}
	if !checkinlog.IsSorted(repo.lastSaved) {
		t.Error("persisted batch not sorted")
	}
	// Equal-timestamp entries keep submission order after the sleep event.
	if got := repo.lastSaved[1].(checkinlog.StatObservation).Metric; got != "Mood" {
		t.Errorf("expected Mood first among equal timestamps, got %s", got)
	}
}

func TestSubmitCheckinAllOrNothing(t *testing.T) {
	service, repo := newTestService(t)

	err := service.SubmitCheckin(context.Background(), primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{
			{Kind: "stat", Metric: "Mood", Rating: 6, Timestamp: "2024-01-01T08:00:00Z"},
			{Kind: "stat", Metric: "Energy", Rating: 99, Timestamp: "2024-01-01T08:00:00Z"},
		},
	})

	var invalid *primary.InvalidEntryError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidEntryError, got %v", err)
	}
	if repo.saveCalls != 0 {
		t.Error("a bad entry must reject the whole batch")
	}
}

func TestSubmitCheckinBadSleepEdge(t *testing.T) {
	service, _ := newTestService(t)

	err := service.SubmitCheckin(context.Background(), primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{
			{Kind: "sleep", Edge: "nap", Timestamp: "2024-01-01T08:00:00Z"},
		},
	})

	var invalid *primary.InvalidEntryError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidEntryError, got %v", err)
	}
	if invalid.Field != "edge" {
		t.Errorf("field = %q, want edge", invalid.Field)
	}
}

func TestSubmitCheckinUnknownKindFailsLoudly(t *testing.T) {
	service, repo := newTestService(t)

	err := service.SubmitCheckin(context.Background(), primary.SubmitCheckinRequest{
		Entries: []primary.CheckinEntry{
			{Kind: "workout", Timestamp: "2024-01-01T08:00:00Z"},
		},
	})

	if !errors.Is(err, checkinlog.ErrUnknownEntryKind) {
		t.Fatalf("expected ErrUnknownEntryKind, got %v", err)
	}
	if repo.saveCalls != 0 {
		t.Error("unknown kind must leave the log unmodified")
	}
}

func TestGetLastObservation(t *testing.T) {
	service, _ := newTestService(t,
		checkinlog.StatObservation{Metric: "Energy", Rating: 5, Timestamp: ts("2024-01-01T10:00:00Z")},
		checkinlog.StatObservation{Metric: "Energy", Rating: 7, Timestamp: ts("2024-01-02T10:00:00Z")},
	)

	obs, err := service.GetLastObservation(context.Background(), "Energy")
	if err != nil {
		t.Fatalf("GetLastObservation: %v", err)
	}
	if obs == nil {
		t.Fatal("expected an observation")
	}
	// Earliest-match semantics.
	if obs.Rating != 5 {
		t.Errorf("rating = %d, want 5", obs.Rating)
	}
}

func TestGetLastObservationUnknownMetric(t *testing.T) {
	service, _ := newTestService(t)

	obs, err := service.GetLastObservation(context.Background(), "Focus")
	if err != nil {
		t.Fatalf("GetLastObservation: %v", err)
	}
	if obs != nil {
		t.Errorf("expected nil for unknown metric, got %+v", obs)
	}
}

func TestGetDayRollups(t *testing.T) {
	service, _ := newTestService(t,
		checkinlog.StatObservation{Metric: "Mood", Rating: 2, Timestamp: ts("2024-02-01T08:00:00Z")},
		checkinlog.StatObservation{Metric: "Mood", Rating: 6, Timestamp: ts("2024-02-01T20:00:00Z")},
		checkinlog.SleepEvent{Edge: checkinlog.EdgeWake, Timestamp: ts("2024-02-01T06:30:00Z")},
		checkinlog.NoteEntry{Note: "good day", Timestamp: ts("2024-02-01T21:00:00Z")},
	)

	rollups, err := service.GetDayRollups(context.Background(), primary.GetDayRollupsRequest{
		From: "2024-02-01T00:00:00Z",
		To:   "2024-02-04T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetDayRollups: %v", err)
	}

	if len(rollups) != 3 {
		t.Fatalf("expected 3 rollups, got %d", len(rollups))
	}
	first := rollups[0]
	if first.Day != "2024-02-01" {
		t.Errorf("day = %s, want 2024-02-01", first.Day)
	}
	if got := first.LatestPerMetric["Mood"].Rating; got != 6 {
		t.Errorf("latest Mood = %d, want 6", got)
	}
	if first.WakeupTime == "" {
		t.Error("expected a wakeup time")
	}
	if first.Comment != "good day" {
		t.Errorf("comment = %q", first.Comment)
	}
	// Gap-filled days are present but empty.
	if len(rollups[1].LatestPerMetric) != 0 || rollups[1].WakeupTime != "" {
		t.Errorf("expected empty rollup for %s", rollups[1].Day)
	}
}

func TestGetDayRollupsBadRange(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.GetDayRollups(context.Background(), primary.GetDayRollupsRequest{
		From: "soon", To: "2024-02-04T00:00:00Z",
	}); err == nil {
		t.Error("expected error for unparsable range")
	}
}

func TestGetDayRollupsInvertedRange(t *testing.T) {
	service, _ := newTestService(t)

	rollups, err := service.GetDayRollups(context.Background(), primary.GetDayRollupsRequest{
		From: "2024-02-04T00:00:00Z",
		To:   "2024-02-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("an inverted range is empty, not an error: %v", err)
	}
	if len(rollups) != 0 {
		t.Errorf("expected no rollups, got %d", len(rollups))
	}
}

func TestGetChartSeries(t *testing.T) {
	service, _ := newTestService(t,
		checkinlog.StatObservation{Metric: "Energy", Rating: 5, Timestamp: ts("2024-01-01T10:00:00Z")},
		checkinlog.StatObservation{Metric: "Energy", Rating: 7, Timestamp: ts("2024-01-02T10:00:00Z")},
	)

	points, err := service.GetChartSeries(context.Background(), primary.GetChartSeriesRequest{
		Metrics: []string{"Energy"},
		From:    "2024-01-01T00:00:00Z",
		To:      "2024-01-03T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetChartSeries: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Day != "2024-01-01" || points[0].Values["Energy"] != 5 {
		t.Errorf("point 0 = %+v", points[0])
	}
	if points[1].Day != "2024-01-02" || points[1].Values["Energy"] != 7 {
		t.Errorf("point 1 = %+v", points[1])
	}
}

func TestGetChartSeriesEmptyLog(t *testing.T) {
	service, _ := newTestService(t)

	points, err := service.GetChartSeries(context.Background(), primary.GetChartSeriesRequest{
		Metrics: []string{"Energy"},
		From:    "2024-01-01T00:00:00Z",
		To:      "2024-01-04T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetChartSeries: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 gap-filled points, got %d", len(points))
	}
	for _, p := range points {
		if p.Values == nil || len(p.Values) != 0 {
			t.Errorf("expected empty values, got %+v", p.Values)
		}
	}
}
