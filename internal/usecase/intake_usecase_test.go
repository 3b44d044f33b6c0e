package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lavanderia_rfid/internal/adapter/persistence/repository"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	mock_interfaces "lavanderia_rfid/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func tags(n int) []entities.TagObservation {
	out := make([]entities.TagObservation, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entities.TagObservation{TagID: fmt.Sprintf("E2000000000000000000%04d", i), Timestamp: t0})
	}
	return out
}

func TestIntakeUseCase_SelectClient(t *testing.T) {
	ctx := context.Background()

	t.Run("moves to capture", func(t *testing.T) {
		e := newEnv(t)
		snap, err := e.intake.SelectClient(ctx, "s1", "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.CurrentStep != entities.IntakeStepGarmentCapture || snap.SelectedClientID != "c1" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.intake.SelectClient(ctx, "s1", "nobody"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
		if _, err := e.intake.SelectClient(ctx, " ", "c1"); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("changing client discards drafts", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(3))

		snap, err := e.intake.SelectClient(ctx, "s1", "c2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.SelectedClientID != "c2" || len(snap.ScannedGarments) != 0 {
			t.Fatalf("expected empty capture for c2, got %+v", snap)
		}
	})

	t.Run("going back then picking another client discards drafts", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(1))
		if _, err := e.intake.Back(ctx, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap, err := e.intake.SelectClient(ctx, "s1", "c2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.SelectedClientID != "c2" || len(snap.ScannedGarments) != 0 {
			t.Fatalf("expected c1 drafts dropped, got %+v", snap)
		}
	})

	t.Run("going back then keeping the client keeps drafts", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(2))
		_, _ = e.intake.Back(ctx, "s1")

		snap, err := e.intake.SelectClient(ctx, "s1", "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.ScannedGarments) != 2 {
			t.Fatalf("expected drafts kept, got %+v", snap)
		}
	})

	t.Run("rejected on confirmation step", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(1))
		_, _ = e.intake.FinalizeBatchMetadata(ctx, "s1", shirt())
		if _, _, err := e.intake.Advance(ctx, "s1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := e.intake.SelectClient(ctx, "s1", "c2"); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("preselected client applies to a new session only", func(t *testing.T) {
		e := newEnv(t)
		s, err := e.intake.Open(ctx, "s1", "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Step() != entities.IntakeStepGarmentCapture || s.Snapshot().SelectedClientID != "c1" {
			t.Fatalf("unexpected state: %+v", s.Snapshot())
		}
		s, _ = e.intake.Open(ctx, "s1", "c2")
		if s.Snapshot().SelectedClientID != "c1" {
			t.Fatalf("expected stored client kept, got %s", s.Snapshot().SelectedClientID)
		}
	})
}

func TestIntakeUseCase_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("requires capture step", func(t *testing.T) {
		e := newEnv(t)
		if _, _, err := e.intake.CaptureFromScan(ctx, "s1", tags(1)); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("ignores repeated tags", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, n, err := e.intake.CaptureFromScan(ctx, "s1", tags(3))
		if err != nil || n != 3 {
			t.Fatalf("expected 3 added, got %d err=%v", n, err)
		}
		snap, n, _ := e.intake.CaptureFromScan(ctx, "s1", append(tags(4), tags(4)...))
		if n != 1 || len(snap.ScannedGarments) != 4 {
			t.Fatalf("expected 1 new draft and 4 total, got %d/%d", n, len(snap.ScannedGarments))
		}
		if snap.UnresolvedCount() != 4 {
			t.Fatalf("expected all drafts unresolved, got %d", snap.UnresolvedCount())
		}
	})
}

func TestIntakeUseCase_Metadata(t *testing.T) {
	ctx := context.Background()

	t.Run("advance blocked until batch metadata is confirmed", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(15))

		_, _, err := e.intake.Advance(ctx, "s1", "")
		if !errors.Is(err, ErrUnresolvedDrafts) || !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected ErrUnresolvedDrafts, got %v", err)
		}

		if _, err := e.intake.FinalizeBatchMetadata(ctx, "s1", entities.GarmentAttributes{Type: "shirt"}); !errors.Is(err, ErrMissingTypeOrColor) {
			t.Fatalf("expected ErrMissingTypeOrColor, got %v", err)
		}
		bad := shirt()
		bad.Priority = "whenever"
		if _, err := e.intake.FinalizeBatchMetadata(ctx, "s1", bad); !errors.Is(err, ErrInvalidAttributes) {
			t.Fatalf("expected ErrInvalidAttributes, got %v", err)
		}

		snap, err := e.intake.FinalizeBatchMetadata(ctx, "s1", shirt())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.UnresolvedCount() != 0 || len(snap.ScannedGarments) != 15 {
			t.Fatalf("expected 15 resolved drafts, got %+v", snap)
		}
		r := snap.ScannedGarments[0].(entities.ResolvedDraft)
		if !r.Grouped || r.Attributes.Condition != entities.ConditionGood {
			t.Fatalf("expected grouped draft with defaults, got %+v", r)
		}

		snap, _, err = e.intake.Advance(ctx, "s1", "")
		if err != nil || snap.CurrentStep != entities.IntakeStepConfirmation {
			t.Fatalf("expected confirmation step, got %d err=%v", snap.CurrentStep, err)
		}
	})

	t.Run("resolve single draft", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(2))

		if _, err := e.intake.ResolveDraft(ctx, "s1", 5, shirt()); !errors.Is(err, ErrInvalidDraftIndex) {
			t.Fatalf("expected ErrInvalidDraftIndex, got %v", err)
		}
		snap, err := e.intake.ResolveDraft(ctx, "s1", 1, entities.GarmentAttributes{Type: "pants", Color: "blue"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, ok := snap.ScannedGarments[1].(entities.ResolvedDraft)
		if !ok || r.Grouped || r.Attributes.Type != "pants" {
			t.Fatalf("unexpected draft: %+v", snap.ScannedGarments[1])
		}
		if snap.UnresolvedCount() != 1 {
			t.Fatalf("expected 1 unresolved, got %d", snap.UnresolvedCount())
		}
	})

	t.Run("discard unresolved keeps resolved", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(3))
		_, _ = e.intake.ResolveDraft(ctx, "s1", 0, shirt())

		snap, err := e.intake.DiscardUnresolved(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.ScannedGarments) != 1 || !snap.ScannedGarments[0].Resolved() {
			t.Fatalf("expected only the resolved draft, got %+v", snap.ScannedGarments)
		}
	})

	t.Run("remove and clear", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(3))

		snap, err := e.intake.RemoveGarment(ctx, "s1", 0)
		if err != nil || len(snap.ScannedGarments) != 2 || snap.ScannedGarments[0].TagID() != tags(2)[1].TagID {
			t.Fatalf("unexpected remove result: %+v err=%v", snap.ScannedGarments, err)
		}
		snap, err = e.intake.ClearAll(ctx, "s1")
		if err != nil || len(snap.ScannedGarments) != 0 {
			t.Fatalf("unexpected clear result: %+v err=%v", snap.ScannedGarments, err)
		}
		if _, _, err := e.intake.Advance(ctx, "s1", ""); !errors.Is(err, ErrNoDrafts) {
			t.Fatalf("expected ErrNoDrafts, got %v", err)
		}
	})
}

func TestIntakeUseCase_Navigation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	if _, _, err := e.intake.Advance(ctx, "s1", ""); !errors.Is(err, ErrNoClientSelected) {
		t.Fatalf("expected ErrNoClientSelected, got %v", err)
	}
	if _, err := e.intake.Back(ctx, "s1"); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}

	_, _ = e.intake.SelectClient(ctx, "s1", "c1")
	snap, err := e.intake.Back(ctx, "s1")
	if err != nil || snap.CurrentStep != entities.IntakeStepClientSelection || snap.SelectedClientID != "c1" {
		t.Fatalf("unexpected back result: %+v err=%v", snap, err)
	}
	snap, _, err = e.intake.Advance(ctx, "s1", "")
	if err != nil || snap.CurrentStep != entities.IntakeStepGarmentCapture {
		t.Fatalf("unexpected advance result: %+v err=%v", snap, err)
	}
}

func TestIntakeUseCase_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("grouped capture creates garments and batch", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(3))
		_, _ = e.intake.FinalizeBatchMetadata(ctx, "s1", shirt())
		_, _, _ = e.intake.Advance(ctx, "s1", "")

		snap, receipt, err := e.intake.Advance(ctx, "s1", "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt == nil || len(receipt.Garments) != 3 || receipt.Batch == nil {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
		if receipt.Batch.ActualCount() != 3 || receipt.Batch.ExpectedGarments != 3 {
			t.Fatalf("unexpected batch: %+v", receipt.Batch)
		}
		for _, g := range receipt.Garments {
			stored := e.garment(t, g.ID)
			if stored.BatchID != receipt.Batch.ID || stored.Status != entities.GarmentStatusReceived || stored.ClientID != "c1" {
				t.Fatalf("unexpected stored garment: %+v", stored)
			}
			if !stored.ReceivedAt.Equal(t0) {
				t.Fatalf("expected received at %v, got %v", t0, stored.ReceivedAt)
			}
		}
		if snap.CurrentStep != entities.IntakeStepClientSelection || snap.SelectedClientID != "" || len(snap.ScannedGarments) != 0 {
			t.Fatalf("expected reset session, got %+v", snap)
		}
		if _, found, _ := e.store.Load(ctx, "s1"); found {
			t.Fatalf("expected stored session removed")
		}

		hist := e.history.All()
		last := hist[len(hist)-1]
		if last.Action != entities.HistoryActionIntakeConfirmed || last.Operator != "maria" {
			t.Fatalf("unexpected history entry: %+v", last)
		}
		if last.Details != fmt.Sprintf("3 garments received in batch #%d", receipt.Batch.BatchNumber) {
			t.Fatalf("unexpected details: %q", last.Details)
		}
		if last.BatchID != receipt.Batch.ID {
			t.Fatalf("expected intake entry to carry the batch, got %q", last.BatchID)
		}
		for _, h := range hist {
			if h.Action == entities.HistoryActionBatchCreated {
				t.Fatalf("expected one entry for the confirmation, found extra %+v", h)
			}
		}
	})

	t.Run("per-tag capture creates no batch", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c2")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(1))
		_, _ = e.intake.ResolveDraft(ctx, "s1", 0, shirt())
		_, _, _ = e.intake.Advance(ctx, "s1", "")

		_, receipt, err := e.intake.Advance(ctx, "s1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Batch != nil || len(receipt.Garments) != 1 || receipt.Garments[0].BatchID != "" {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
	})

	t.Run("registered rfid aborts without side effects", func(t *testing.T) {
		e := newEnv(t)
		existing := e.addGarment(t, "900", "c2")
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", append(tags(1), entities.TagObservation{TagID: existing.RFIDCode}))
		_, _ = e.intake.FinalizeBatchMetadata(ctx, "s1", shirt())
		_, _, _ = e.intake.Advance(ctx, "s1", "")

		snap, _, err := e.intake.Advance(ctx, "s1", "")
		if !errors.Is(err, ErrRFIDAlreadyRegistered) || !errors.Is(err, errs.ErrConflict) {
			t.Fatalf("expected ErrRFIDAlreadyRegistered, got %v", err)
		}
		if snap.CurrentStep != entities.IntakeStepConfirmation || len(snap.ScannedGarments) != 2 {
			t.Fatalf("expected session kept on confirmation, got %+v", snap)
		}
		list, _ := e.garments.List(ctx)
		if len(list) != 1 {
			t.Fatalf("expected no new garments, got %d", len(list))
		}
	})
}

func TestIntakeUseCase_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("reload resumes the session", func(t *testing.T) {
		e := newEnv(t)
		_, _ = e.intake.SelectClient(ctx, "s1", "c1")
		_, _, _ = e.intake.CaptureFromScan(ctx, "s1", tags(2))
		_, _ = e.intake.ResolveDraft(ctx, "s1", 0, shirt())

		// A second use case over the same store stands in for a page reload.
		reloaded := NewIntakeUseCase(e.clients, e.garments, e.seq, e.batch, e.history, e.store, e.clock)
		snap, err := reloaded.State(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.SelectedClientID != "c1" || snap.CurrentStep != entities.IntakeStepGarmentCapture {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if len(snap.ScannedGarments) != 2 || !snap.ScannedGarments[0].Resolved() || snap.ScannedGarments[1].Resolved() {
			t.Fatalf("unexpected drafts: %+v", snap.ScannedGarments)
		}
	})

	t.Run("store failure keeps previous state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIIntakeSessionStore(ctrl)
		e := newEnv(t)
		uc := NewIntakeUseCase(e.clients, e.garments, e.seq, e.batch, e.history, store, e.clock)

		stored := entities.IntakeSnapshot{SelectedClientID: "c1", CurrentStep: entities.IntakeStepGarmentCapture}
		store.EXPECT().Load(gomock.Any(), "s1").Return(stored, true, nil)
		store.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(errors.New("redis down"))

		s, err := uc.Open(ctx, "s1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := s.CaptureFromScan(ctx, tags(2)); err == nil {
			t.Fatalf("expected store error")
		}
		if len(s.Snapshot().ScannedGarments) != 0 {
			t.Fatalf("expected drafts rolled back, got %d", len(s.Snapshot().ScannedGarments))
		}
	})

	t.Run("reset clears the store", func(t *testing.T) {
		store := repository.NewIntakeSessionMemoryStore()
		e := newEnv(t)
		uc := NewIntakeUseCase(e.clients, e.garments, e.seq, e.batch, e.history, store, e.clock)
		_, _ = uc.SelectClient(ctx, "s1", "c1")
		if err := uc.Reset(ctx, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.State(ctx, "s1")
		if snap.CurrentStep != entities.IntakeStepClientSelection || snap.SelectedClientID != "" {
			t.Fatalf("expected fresh session, got %+v", snap)
		}
	})
}
