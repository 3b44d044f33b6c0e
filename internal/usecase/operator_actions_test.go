package usecase

import (
	"context"
	"errors"
	"testing"

	"lavanderia_rfid/internal/domain/entities"
)

func TestActionDispatcher(t *testing.T) {
	ctx := context.Background()

	newDispatcher := func(t *testing.T) (*env, *ActionDispatcher) {
		e := newEnv(t)
		return e, NewActionDispatcher(e.lifecycle, e.batch)
	}

	t.Run("unknown action", func(t *testing.T) {
		_, d := newDispatcher(t)
		if _, err := d.Dispatch(ctx, ActionRequest{Action: "teleport"}); !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("expected ErrUnknownAction, got %v", err)
		}
	})

	t.Run("lists every action", func(t *testing.T) {
		_, d := newDispatcher(t)
		got := d.Actions()
		if len(got) != 9 || got[0] != ActionMarkInProcess || got[8] != ActionDeleteBatch {
			t.Fatalf("unexpected actions: %v", got)
		}
	})

	t.Run("shortcut on one garment", func(t *testing.T) {
		e, d := newDispatcher(t)
		e.addGarment(t, "1", "c1")
		res, err := d.Dispatch(ctx, ActionRequest{Action: ActionMarkReady, GarmentIDs: []string{"1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Garments) != 1 || res.Garments[0].Status != entities.GarmentStatusReady || res.Report != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("shortcut on a selection uses the bulk report", func(t *testing.T) {
		e, d := newDispatcher(t)
		e.addGarment(t, "1", "c1")
		e.addGarment(t, "2", "c1")
		res, err := d.Dispatch(ctx, ActionRequest{Action: ActionMarkInProcess, GarmentIDs: []string{"1", "2", "404"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Report == nil || res.Report.Changed != 2 || res.Report.NotFound != 1 {
			t.Fatalf("unexpected report: %+v", res.Report)
		}
	})

	t.Run("status actions need garments", func(t *testing.T) {
		_, d := newDispatcher(t)
		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionSetStatus, Status: entities.GarmentStatusReady}); !errors.Is(err, ErrInvalidGarmentID) {
			t.Fatalf("expected ErrInvalidGarmentID, got %v", err)
		}
		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionBoardMove, GarmentIDs: []string{"1", "2"}}); !errors.Is(err, ErrInvalidGarmentID) {
			t.Fatalf("expected ErrInvalidGarmentID, got %v", err)
		}
	})

	t.Run("board move and note", func(t *testing.T) {
		e, d := newDispatcher(t)
		e.addGarment(t, "1", "c1")
		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionBoardMove, GarmentIDs: []string{"1"}, Status: entities.GarmentStatusInProcess}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := d.Dispatch(ctx, ActionRequest{Action: ActionAddNote, GarmentIDs: []string{"1"}, Note: "stain on sleeve"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g := res.Garments[0]
		if g.Status != entities.GarmentStatusInProcess || g.Notes != "[2024-03-01 09:00] stain on sleeve" {
			t.Fatalf("unexpected garment: %+v", g)
		}
	})

	t.Run("batch actions", func(t *testing.T) {
		e, d := newDispatcher(t)
		e.addGarment(t, "1", "c1")
		e.addGarment(t, "2", "c1")
		b, _ := e.batch.CreateBatch(ctx, "c1", nil, 2, "")

		res, err := d.Dispatch(ctx, ActionRequest{Action: ActionAddToBatch, BatchID: b.ID, GarmentIDs: []string{"1", "2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Batch == nil || res.Batch.ActualCount() != 2 {
			t.Fatalf("unexpected batch: %+v", res.Batch)
		}

		res, err = d.Dispatch(ctx, ActionRequest{Action: ActionCompleteBatch, BatchID: b.ID})
		if err != nil || res.Batch.Status != entities.BatchStatusListo {
			t.Fatalf("unexpected complete result: %+v err=%v", res, err)
		}

		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionDeleteBatch, BatchID: b.ID}); !errors.Is(err, ErrBatchHasUndelivered) {
			t.Fatalf("expected ErrBatchHasUndelivered, got %v", err)
		}
		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionMarkDelivered, GarmentIDs: []string{"1", "2"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := d.Dispatch(ctx, ActionRequest{Action: ActionDeleteBatch, BatchID: b.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
