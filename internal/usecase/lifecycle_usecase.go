package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/infrastructure/metrics"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ILifecycleUseCase drives garment status changes.
//
// Entry points:
//   - Transition: edit form / single status change
//   - BulkTransition: bulk action over a selection of garments
//   - MoveOnBoard: kanban drag-and-drop
//   - AppendNote: operator annotation
type ILifecycleUseCase interface {
	Transition(ctx context.Context, garmentID string, status entities.GarmentStatus, note, operator string) (entities.Garment, error)
	BulkTransition(ctx context.Context, garmentIDs []string, status entities.GarmentStatus, note, operator string) (BulkTransitionReport, error)
	MoveOnBoard(ctx context.Context, garmentID string, status entities.GarmentStatus, operator string) (entities.Garment, error)
	AppendNote(ctx context.Context, garmentID, text, operator string) (entities.Garment, error)
	GetGarment(ctx context.Context, garmentID string) (entities.Garment, error)
	ListGarments(ctx context.Context, clientID string) ([]entities.Garment, error)
	History(ctx context.Context, garmentID string) ([]entities.HistoryEntry, error)
}

// BulkTransitionReport separates garments that changed from the ones that
// were skipped (already at the target status), unknown, or failed.
type BulkTransitionReport struct {
	Attempted   int               `json:"attempted"`
	Changed     int               `json:"changed"`
	Skipped     int               `json:"skipped"`
	NotFound    int               `json:"not_found"`
	Failed      int               `json:"failed"`
	ChangedIDs  []string          `json:"changed_ids"`
	SkippedIDs  []string          `json:"skipped_ids,omitempty"`
	NotFoundIDs []string          `json:"not_found_ids,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
}

type LifecycleUseCase struct {
	garments interfaces.IGarmentRepository
	history  historyRecorder
	clock    interfaces.IClock
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(garments interfaces.IGarmentRepository, history interfaces.IHistoryRepository, clock interfaces.IClock) *LifecycleUseCase {
	return &LifecycleUseCase{
		garments: garments,
		history:  historyRecorder{repo: history, clock: clock},
		clock:    clock,
	}
}

func (u *LifecycleUseCase) Transition(ctx context.Context, garmentID string, status entities.GarmentStatus, note, operator string) (entities.Garment, error) {
	return u.transition(ctx, garmentID, status, note, operator, entities.HistoryActionStatusChange)
}

func (u *LifecycleUseCase) MoveOnBoard(ctx context.Context, garmentID string, status entities.GarmentStatus, operator string) (entities.Garment, error) {
	return u.transition(ctx, garmentID, status, "", operator, entities.HistoryActionBoardMove)
}

// BulkTransition applies the transition to each id in the given order. The
// unit of atomicity is one garment: a failure on one id never stops the rest.
func (u *LifecycleUseCase) BulkTransition(ctx context.Context, garmentIDs []string, status entities.GarmentStatus, note, operator string) (BulkTransitionReport, error) {
	if !status.Valid() {
		return BulkTransitionReport{}, ErrInvalidStatus
	}

	report := BulkTransitionReport{ChangedIDs: []string{}}
	for _, id := range garmentIDs {
		report.Attempted++
		_, err := u.transition(ctx, id, status, note, operator, entities.HistoryActionStatusChange)
		switch {
		case err == nil:
			report.Changed++
			report.ChangedIDs = append(report.ChangedIDs, id)
		case errors.Is(err, ErrInvalidTransition):
			report.Skipped++
			report.SkippedIDs = append(report.SkippedIDs, id)
		case errors.Is(err, ErrGarmentNotFound):
			report.NotFound++
			report.NotFoundIDs = append(report.NotFoundIDs, id)
		default:
			report.Failed++
			if report.Errors == nil {
				report.Errors = map[string]string{}
			}
			report.Errors[id] = err.Error()
		}
	}

	log.Info().
		Str("status", string(status)).
		Int("attempted", report.Attempted).
		Int("changed", report.Changed).
		Int("skipped", report.Skipped).
		Int("not_found", report.NotFound).
		Int("failed", report.Failed).
		Msg("[lifecycle][usecase] bulk transition done")
	return report, nil
}

func (u *LifecycleUseCase) transition(ctx context.Context, garmentID string, status entities.GarmentStatus, note, operator string, action entities.HistoryAction) (entities.Garment, error) {
	garmentID = strings.TrimSpace(garmentID)
	if garmentID == "" {
		return entities.Garment{}, ErrInvalidGarmentID
	}
	if !status.Valid() {
		return entities.Garment{}, ErrInvalidStatus
	}

	g, err := u.garments.GetByID(ctx, garmentID)
	if err != nil {
		return entities.Garment{}, err
	}
	if g.ID == "" {
		return entities.Garment{}, ErrGarmentNotFound
	}
	if g.Status == status {
		return entities.Garment{}, ErrInvalidTransition
	}

	previous := g
	now := u.clock.Now()
	g.Status = status
	g.StampStage(status, now)
	g.LastUpdated = now

	saved, err := u.garments.Save(ctx, g)
	if err != nil {
		log.Error().Err(err).Str("garment_id", garmentID).Msg("[lifecycle][usecase] save failed")
		return entities.Garment{}, err
	}

	details := fmt.Sprintf("%s -> %s", previous.Status, status)
	if note = strings.TrimSpace(note); note != "" {
		details += ": " + note
	}
	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   g.ClientID,
		GarmentIDs: []string{g.ID},
		BatchID:    g.BatchID,
		Action:     action,
		Operator:   operator,
		Details:    details,
		Timestamp:  now,
	}); err != nil {
		log.Error().Err(err).Str("garment_id", garmentID).Msg("[lifecycle][usecase] history append failed, reverting")
		if _, rbErr := u.garments.Save(ctx, previous); rbErr != nil {
			log.Error().Err(rbErr).Str("garment_id", garmentID).Msg("[lifecycle][usecase] revert failed")
		}
		return entities.Garment{}, err
	}

	metrics.GarmentTransitionsTotal.WithLabelValues(string(previous.Status), string(status), string(action)).Inc()
	log.Info().
		Str("garment_id", garmentID).
		Str("from", string(previous.Status)).
		Str("to", string(status)).
		Str("trigger", string(action)).
		Msg("[lifecycle][usecase] transition applied")
	return saved, nil
}

func (u *LifecycleUseCase) AppendNote(ctx context.Context, garmentID, text, operator string) (entities.Garment, error) {
	garmentID = strings.TrimSpace(garmentID)
	if garmentID == "" {
		return entities.Garment{}, ErrInvalidGarmentID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Garment{}, ErrEmptyNote
	}

	g, err := u.garments.GetByID(ctx, garmentID)
	if err != nil {
		return entities.Garment{}, err
	}
	if g.ID == "" {
		return entities.Garment{}, ErrGarmentNotFound
	}

	previous := g
	now := u.clock.Now()
	g.AppendNote(now, text)
	g.LastUpdated = now

	saved, err := u.garments.Save(ctx, g)
	if err != nil {
		return entities.Garment{}, err
	}
	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   g.ClientID,
		GarmentIDs: []string{g.ID},
		BatchID:    g.BatchID,
		Action:     entities.HistoryActionNoteAdded,
		Operator:   operator,
		Details:    text,
		Timestamp:  now,
	}); err != nil {
		if _, rbErr := u.garments.Save(ctx, previous); rbErr != nil {
			log.Error().Err(rbErr).Str("garment_id", garmentID).Msg("[lifecycle][usecase] revert failed")
		}
		return entities.Garment{}, err
	}
	return saved, nil
}

func (u *LifecycleUseCase) GetGarment(ctx context.Context, garmentID string) (entities.Garment, error) {
	garmentID = strings.TrimSpace(garmentID)
	if garmentID == "" {
		return entities.Garment{}, ErrInvalidGarmentID
	}
	g, err := u.garments.GetByID(ctx, garmentID)
	if err != nil {
		return entities.Garment{}, err
	}
	if g.ID == "" {
		return entities.Garment{}, ErrGarmentNotFound
	}
	return g, nil
}

// ListGarments returns the garments of one client, or every garment when
// clientID is empty.
func (u *LifecycleUseCase) ListGarments(ctx context.Context, clientID string) ([]entities.Garment, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return u.garments.List(ctx)
	}
	return u.garments.ListByClient(ctx, clientID)
}

func (u *LifecycleUseCase) History(ctx context.Context, garmentID string) ([]entities.HistoryEntry, error) {
	g, err := u.GetGarment(ctx, garmentID)
	if err != nil {
		return nil, err
	}
	return u.history.repo.ListByGarment(ctx, g.ID)
}
