package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavanderia_rfid/internal/domain/entities"
)

const day = 24 * time.Hour

func TestDelayMonitor_IsDelayed(t *testing.T) {
	clock := newFakeClock(t0)
	m := NewDelayMonitor(nil, nil, clock, 0)

	g := entities.Garment{ID: "1", Status: entities.GarmentStatusInProcess, ReceivedAt: t0.Add(-8 * day)}
	if !m.IsDelayed(g, 7) {
		t.Fatalf("expected 8 days to be delayed at threshold 7")
	}

	g.Status = entities.GarmentStatusDelivered
	if m.IsDelayed(g, 7) {
		t.Fatalf("delivered garments are never delayed")
	}

	exact := entities.Garment{ID: "2", Status: entities.GarmentStatusReceived, ReceivedAt: t0.Add(-7 * day)}
	if m.IsDelayed(exact, 7) {
		t.Fatalf("expected exactly 7 days to be on time")
	}
}

func TestDelayMonitor_ProcessProgress(t *testing.T) {
	clock := newFakeClock(t0)
	m := NewDelayMonitor(nil, nil, clock, 0)

	tests := []struct {
		name     string
		received time.Time
		expected float64
		want     int
	}{
		{"fresh", t0, 3, 0},
		{"halfway", t0.Add(-36 * time.Hour), 3, 50},
		{"capped", t0.Add(-10 * day), 3, 100},
		{"no expectation", t0, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ProcessProgress(entities.Garment{ReceivedAt: tt.received}, tt.expected)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDelayMonitor_DelayedGarments(t *testing.T) {
	clock := newFakeClock(t0)
	m := NewDelayMonitor(nil, nil, clock, 0)

	all := []entities.Garment{
		{ID: "b", Status: entities.GarmentStatusReady, ReceivedAt: t0.Add(-9 * day)},
		{ID: "c", Status: entities.GarmentStatusReceived, ReceivedAt: t0.Add(-1 * day)},
		{ID: "a", Status: entities.GarmentStatusReceived, ReceivedAt: t0.Add(-9 * day)},
		{ID: "d", Status: entities.GarmentStatusInProcess, ReceivedAt: t0.Add(-12 * day)},
		{ID: "e", Status: entities.GarmentStatusDelivered, ReceivedAt: t0.Add(-30 * day)},
	}
	got := m.DelayedGarments(all, 7)
	want := []string{"d", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %d delayed, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestDelayMonitor_DelayedBatches(t *testing.T) {
	clock := newFakeClock(t0)
	m := NewDelayMonitor(nil, nil, clock, 0)

	byID := map[string]entities.Garment{
		"old": {ID: "old", Status: entities.GarmentStatusReceived, ReceivedAt: t0.Add(-8 * day)},
		"new": {ID: "new", Status: entities.GarmentStatusReceived, ReceivedAt: t0},
	}
	batches := []entities.Batch{
		{ID: "b2", BatchNumber: 2, GarmentIDs: []string{"new", "old"}},
		{ID: "b3", BatchNumber: 3, GarmentIDs: []string{"new"}},
		{ID: "b1", BatchNumber: 1, GarmentIDs: []string{"old", "missing"}},
	}
	got := m.DelayedBatches(batches, byID, 7)
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b2" {
		t.Fatalf("unexpected delayed batches: %+v", got)
	}
}

func TestDelayMonitor_Alerts(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid threshold", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.monitor.Alerts(ctx, "", 0); !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("eight days in process", func(t *testing.T) {
		e := newEnv(t)
		e.addGarment(t, "1", "c1")
		e.addGarment(t, "2", "c2")
		b, err := e.batch.CreateBatch(ctx, "c1", []string{"1"}, 1, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, _ = e.lifecycle.Transition(ctx, "1", entities.GarmentStatusInProcess, "", "")
		_, _ = e.lifecycle.Transition(ctx, "2", entities.GarmentStatusDelivered, "", "")
		e.clock.Advance(8 * day)

		report, err := e.monitor.Alerts(ctx, "", DefaultDelayThresholdDays)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.DelayedGarments) != 1 || report.DelayedGarments[0].ID != "1" {
			t.Fatalf("unexpected delayed garments: %+v", report.DelayedGarments)
		}
		dg := report.DelayedGarments[0]
		if dg.DaysInSystem != 8 || dg.Progress != 100 {
			t.Fatalf("unexpected figures: days=%v progress=%d", dg.DaysInSystem, dg.Progress)
		}
		if len(report.DelayedBatches) != 1 || report.DelayedBatches[0].ID != b.ID {
			t.Fatalf("unexpected delayed batches: %+v", report.DelayedBatches)
		}
		if report.Summary[string(entities.GarmentStatusInProcess)] != 1 {
			t.Fatalf("unexpected summary: %+v", report.Summary)
		}
		if !report.GeneratedAt.Equal(e.clock.Now()) {
			t.Fatalf("unexpected generated at %v", report.GeneratedAt)
		}

		scoped, _ := e.monitor.Alerts(ctx, "c2", DefaultDelayThresholdDays)
		if len(scoped.DelayedGarments) != 0 || len(scoped.DelayedBatches) != 0 {
			t.Fatalf("expected nothing delayed for c2, got %+v", scoped)
		}
	})
}
