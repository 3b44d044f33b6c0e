package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	mock_interfaces "lavanderia_rfid/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLifecycleUseCase_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input", func(t *testing.T) {
		uc := NewLifecycleUseCase(nil, nil, newFakeClock(t0))
		if _, err := uc.Transition(ctx, "  ", entities.GarmentStatusReady, "", ""); !errors.Is(err, ErrInvalidGarmentID) {
			t.Fatalf("expected ErrInvalidGarmentID, got %v", err)
		}
		if _, err := uc.Transition(ctx, "1", "washing", "", ""); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown garment", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.lifecycle.Transition(ctx, "404", entities.GarmentStatusReady, "", "ops")
		if !errors.Is(err, ErrGarmentNotFound) || !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if len(e.history.All()) != 0 {
			t.Fatalf("expected no history")
		}
	})

	t.Run("same status is rejected without side effects", func(t *testing.T) {
		e := newEnv(t)
		e.addGarment(t, "1", "c1")
		_, err := e.lifecycle.Transition(ctx, "1", entities.GarmentStatusReceived, "", "ops")
		if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if len(e.history.All()) != 0 {
			t.Fatalf("expected no history")
		}
	})

	t.Run("regression keeps the first ready timestamp", func(t *testing.T) {
		e := newEnv(t)
		e.addGarment(t, "1", "c1")

		e.clock.Advance(time.Hour)
		if _, err := e.lifecycle.Transition(ctx, "1", entities.GarmentStatusInProcess, "", "ops"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e.clock.Advance(time.Hour)
		readyAt := e.clock.Now()
		if _, err := e.lifecycle.Transition(ctx, "1", entities.GarmentStatusReady, "", "ops"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e.clock.Advance(time.Hour)
		g, err := e.lifecycle.Transition(ctx, "1", entities.GarmentStatusInProcess, "rewash", "ops")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if g.Status != entities.GarmentStatusInProcess {
			t.Fatalf("expected in_process, got %s", g.Status)
		}
		if g.ReadyAt == nil || !g.ReadyAt.Equal(readyAt) {
			t.Fatalf("expected readyAt kept at %v, got %v", readyAt, g.ReadyAt)
		}
		if g.ProcessedAt == nil || !g.ProcessedAt.Equal(t0.Add(time.Hour)) {
			t.Fatalf("expected processedAt kept, got %v", g.ProcessedAt)
		}
		if !g.LastUpdated.Equal(e.clock.Now()) {
			t.Fatalf("expected lastUpdated refreshed")
		}

		hist, _ := e.lifecycle.History(ctx, "1")
		if len(hist) != 3 {
			t.Fatalf("expected 3 history entries, got %d", len(hist))
		}
		last := hist[2]
		if last.Action != entities.HistoryActionStatusChange || last.Details != "ready -> in_process: rewash" || last.Operator != "ops" {
			t.Fatalf("unexpected entry: %+v", last)
		}
	})

	t.Run("jumping ahead stamps skipped stages", func(t *testing.T) {
		e := newEnv(t)
		e.addGarment(t, "1", "c1")
		e.clock.Advance(2 * time.Hour)

		g, err := e.lifecycle.Transition(ctx, "1", entities.GarmentStatusDelivered, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.ProcessedAt == nil || g.ReadyAt == nil || g.DeliveredAt == nil {
			t.Fatalf("expected every stage stamped: %+v", g)
		}
		if g.ProcessedAt.Before(g.ReceivedAt) || g.ReadyAt.Before(*g.ProcessedAt) || g.DeliveredAt.Before(*g.ReadyAt) {
			t.Fatalf("timestamps not monotonic: %+v", g)
		}
		hist, _ := e.lifecycle.History(ctx, "1")
		if hist[0].Operator != systemOperator {
			t.Fatalf("expected system operator, got %q", hist[0].Operator)
		}
	})

	t.Run("history failure reverts the garment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		garments := mock_interfaces.NewMockIGarmentRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewLifecycleUseCase(garments, history, newFakeClock(t0))

		original := entities.Garment{ID: "1", ClientID: "c1", Status: entities.GarmentStatusReceived, ReceivedAt: t0}
		garments.EXPECT().GetByID(gomock.Any(), "1").Return(original, nil)
		gomock.InOrder(
			garments.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Garment{})).DoAndReturn(
				func(_ context.Context, g entities.Garment) (entities.Garment, error) {
					if g.Status != entities.GarmentStatusReady {
						t.Fatalf("expected ready, got %s", g.Status)
					}
					return g, nil
				},
			),
			garments.EXPECT().Save(gomock.Any(), original).Return(original, nil),
		)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.HistoryEntry{}, errors.New("db"))

		if _, err := uc.Transition(ctx, "1", entities.GarmentStatusReady, "", "ops"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		garments := mock_interfaces.NewMockIGarmentRepository(ctrl)
		uc := NewLifecycleUseCase(garments, nil, newFakeClock(t0))

		garments.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Garment{}, errors.New("db"))
		if _, err := uc.Transition(ctx, "1", entities.GarmentStatusReady, "", ""); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLifecycleUseCase_MoveOnBoard(t *testing.T) {
	e := newEnv(t)
	e.addGarment(t, "1", "c1")

	g, err := e.lifecycle.MoveOnBoard(context.Background(), "1", entities.GarmentStatusInProcess, "ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != entities.GarmentStatusInProcess {
		t.Fatalf("expected in_process, got %s", g.Status)
	}
	hist := e.history.All()
	if len(hist) != 1 || hist[0].Action != entities.HistoryActionBoardMove {
		t.Fatalf("expected one board_move entry, got %+v", hist)
	}
}

func TestLifecycleUseCase_BulkTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("reports changed, skipped and not found separately", func(t *testing.T) {
		e := newEnv(t)
		e.addGarment(t, "1", "c1")
		e.addGarment(t, "2", "c1")
		e.addGarment(t, "3", "c1")
		if _, err := e.lifecycle.Transition(ctx, "2", entities.GarmentStatusReady, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := len(e.history.All())

		report, err := e.lifecycle.BulkTransition(ctx, []string{"3", "404", "2", "1"}, entities.GarmentStatusReady, "batch done", "ops")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Attempted != 4 || report.Changed != 2 || report.Skipped != 1 || report.NotFound != 1 || report.Failed != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if strings.Join(report.ChangedIDs, ",") != "3,1" {
			t.Fatalf("expected submission order, got %v", report.ChangedIDs)
		}
		if len(report.SkippedIDs) != 1 || report.SkippedIDs[0] != "2" || report.NotFoundIDs[0] != "404" {
			t.Fatalf("unexpected ids: %+v", report)
		}

		added := e.history.All()[before:]
		if len(added) != 2 || added[0].GarmentIDs[0] != "3" || added[1].GarmentIDs[0] != "1" {
			t.Fatalf("expected history in submission order, got %+v", added)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.lifecycle.BulkTransition(ctx, []string{"1"}, "bogus", "", ""); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("failure on one garment does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		garments := mock_interfaces.NewMockIGarmentRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewLifecycleUseCase(garments, history, newFakeClock(t0))

		garments.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Garment{}, errors.New("timeout"))
		garments.EXPECT().GetByID(gomock.Any(), "2").Return(entities.Garment{ID: "2", Status: entities.GarmentStatusReceived}, nil)
		garments.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g entities.Garment) (entities.Garment, error) { return g, nil },
		)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoryEntry) (entities.HistoryEntry, error) { return h, nil },
		)

		report, err := uc.BulkTransition(ctx, []string{"1", "2"}, entities.GarmentStatusInProcess, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Failed != 1 || report.Changed != 1 || report.Errors["1"] != "timeout" {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}

func TestLifecycleUseCase_AppendNote(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addGarment(t, "1", "c1")

	if _, err := e.lifecycle.AppendNote(ctx, "1", "   ", "ops"); !errors.Is(err, ErrEmptyNote) {
		t.Fatalf("expected ErrEmptyNote, got %v", err)
	}

	if _, err := e.lifecycle.AppendNote(ctx, "1", "missing button", "ops"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.clock.Advance(90 * time.Minute)
	g, err := e.lifecycle.AppendNote(ctx, "1", "button replaced", "ops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[2024-03-01 09:00] missing button\n[2024-03-01 10:30] button replaced"
	if g.Notes != want {
		t.Fatalf("unexpected notes:\n%s", g.Notes)
	}
	hist := e.history.All()
	if len(hist) != 2 || hist[1].Action != entities.HistoryActionNoteAdded || hist[1].Details != "button replaced" {
		t.Fatalf("unexpected history: %+v", hist)
	}
}

func TestLifecycleUseCase_Queries(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addGarment(t, "1", "c1")
	e.addGarment(t, "2", "c2")

	if _, err := e.lifecycle.GetGarment(ctx, "9"); !errors.Is(err, ErrGarmentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	list, _ := e.lifecycle.ListGarments(ctx, "c1")
	if len(list) != 1 || list[0].ID != "1" {
		t.Fatalf("unexpected list: %+v", list)
	}
	all, _ := e.lifecycle.ListGarments(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 garments, got %d", len(all))
	}
	if _, err := e.lifecycle.History(ctx, "9"); !errors.Is(err, ErrGarmentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
