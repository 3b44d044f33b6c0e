package usecase

import (
	"context"
	"fmt"
	"strings"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/infrastructure/metrics"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IBatchUseCase groups garments into batches and tracks their progress.
type IBatchUseCase interface {
	CreateBatch(ctx context.Context, clientID string, garmentIDs []string, expectedGarments int, operator string) (entities.Batch, error)
	AddGarment(ctx context.Context, batchID, garmentID, operator string) (entities.Batch, error)
	Progress(ctx context.Context, batchID string) (BatchProgress, error)
	CompleteBatch(ctx context.Context, batchID, operator string) (entities.Batch, error)
	DeleteBatch(ctx context.Context, batchID, operator string) error
	SetStatus(ctx context.Context, batchID string, status entities.BatchStatus, operator string) (entities.Batch, error)
	GetBatch(ctx context.Context, batchID string) (entities.Batch, error)
	ListBatches(ctx context.Context, clientID string) ([]entities.Batch, error)
}

type BatchProgress struct {
	BatchID    string `json:"batch_id"`
	Actual     int    `json:"actual"`
	Expected   int    `json:"expected"`
	Progress   int    `json:"progress"`
	IsComplete bool   `json:"is_complete"`
}

func progressOf(b entities.Batch) BatchProgress {
	return BatchProgress{
		BatchID:    b.ID,
		Actual:     b.ActualCount(),
		Expected:   b.ExpectedGarments,
		Progress:   b.Progress(),
		IsComplete: b.IsComplete(),
	}
}

type BatchUseCase struct {
	clients   interfaces.IClientRepository
	garments  interfaces.IGarmentRepository
	batches   interfaces.IBatchRepository
	sequences interfaces.ISequenceRepository
	history   historyRecorder
	notifier  interfaces.INotificationSink
	clock     interfaces.IClock
}

var _ IBatchUseCase = (*BatchUseCase)(nil)

func NewBatchUseCase(
	clients interfaces.IClientRepository,
	garments interfaces.IGarmentRepository,
	batches interfaces.IBatchRepository,
	sequences interfaces.ISequenceRepository,
	history interfaces.IHistoryRepository,
	notifier interfaces.INotificationSink,
	clock interfaces.IClock,
) *BatchUseCase {
	return &BatchUseCase{
		clients:   clients,
		garments:  garments,
		batches:   batches,
		sequences: sequences,
		history:   historyRecorder{repo: history, clock: clock},
		notifier:  notifier,
		clock:     clock,
	}
}

// CreateBatch registers a new batch for clientID with the given members.
// expectedGarments is raised to len(garmentIDs) when smaller; it never shrinks.
func (u *BatchUseCase) CreateBatch(ctx context.Context, clientID string, garmentIDs []string, expectedGarments int, operator string) (entities.Batch, error) {
	return u.createBatch(ctx, clientID, garmentIDs, expectedGarments, operator, true)
}

// createBatch skips the batch_created history entry when record is false, for
// callers that log the creation as part of their own entry.
func (u *BatchUseCase) createBatch(ctx context.Context, clientID string, garmentIDs []string, expectedGarments int, operator string, record bool) (entities.Batch, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Batch{}, ErrInvalidClientID
	}
	if expectedGarments < 1 {
		return entities.Batch{}, ErrInvalidExpected
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Batch{}, err
	}
	if client.ID == "" {
		return entities.Batch{}, ErrClientNotFound
	}

	members := make([]entities.Garment, 0, len(garmentIDs))
	seen := make(map[string]struct{}, len(garmentIDs))
	for _, raw := range garmentIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return entities.Batch{}, ErrInvalidGarmentID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g, err := u.garments.GetByID(ctx, id)
		if err != nil {
			return entities.Batch{}, err
		}
		if g.ID == "" {
			return entities.Batch{}, fmt.Errorf("%w: %s", ErrGarmentNotFound, id)
		}
		if g.ClientID != clientID {
			return entities.Batch{}, fmt.Errorf("%w: garment %s is owned by client %s", ErrGarmentOtherClient, id, g.ClientID)
		}
		if g.BatchID != "" {
			return entities.Batch{}, fmt.Errorf("%w: garment %s is in batch %s", ErrGarmentInOtherBatch, id, g.BatchID)
		}
		members = append(members, g)
	}
	if len(members) > expectedGarments {
		expectedGarments = len(members)
	}

	id, err := u.sequences.NextID(ctx)
	if err != nil {
		return entities.Batch{}, err
	}
	number, err := u.sequences.NextBatchNumber(ctx)
	if err != nil {
		return entities.Batch{}, err
	}

	now := u.clock.Now()
	b := entities.Batch{
		ID:               id,
		BatchNumber:      number,
		ClientID:         clientID,
		GarmentIDs:       make([]string, 0, len(members)),
		ExpectedGarments: expectedGarments,
		Status:           entities.BatchStatusRecibido,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, g := range members {
		b.GarmentIDs = append(b.GarmentIDs, g.ID)
	}

	created, err := u.batches.Save(ctx, b)
	if err != nil {
		return entities.Batch{}, err
	}

	attached := make([]entities.Garment, 0, len(members))
	for _, g := range members {
		original := g
		g.BatchID = b.ID
		g.LastUpdated = now
		if _, err := u.garments.Save(ctx, g); err != nil {
			log.Error().Err(err).Str("batch_id", b.ID).Str("garment_id", g.ID).Msg("[batch][usecase] attach failed, reverting batch creation")
			u.revertGarments(ctx, attached)
			u.revertBatchCreation(ctx, b.ID)
			return entities.Batch{}, err
		}
		attached = append(attached, original)
	}

	if record {
		if err := u.history.record(ctx, entities.HistoryEntry{
			ClientID:   clientID,
			GarmentIDs: b.GarmentIDs,
			BatchID:    b.ID,
			Action:     entities.HistoryActionBatchCreated,
			Operator:   operator,
			Details:    fmt.Sprintf("batch #%d created with %d/%d garments", b.BatchNumber, b.ActualCount(), b.ExpectedGarments),
			Timestamp:  now,
		}); err != nil {
			u.revertGarments(ctx, attached)
			u.revertBatchCreation(ctx, b.ID)
			return entities.Batch{}, err
		}
	}

	log.Info().
		Str("batch_id", b.ID).
		Int64("batch_number", b.BatchNumber).
		Str("client_id", clientID).
		Int("garments", b.ActualCount()).
		Int("expected", b.ExpectedGarments).
		Msg("[batch][usecase] batch created")
	return created, nil
}

// AddGarment appends garmentID to the batch. Adding a member twice is a no-op.
func (u *BatchUseCase) AddGarment(ctx context.Context, batchID, garmentID, operator string) (entities.Batch, error) {
	b, err := u.GetBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}
	garmentID = strings.TrimSpace(garmentID)
	if garmentID == "" {
		return entities.Batch{}, ErrInvalidGarmentID
	}

	g, err := u.garments.GetByID(ctx, garmentID)
	if err != nil {
		return entities.Batch{}, err
	}
	if g.ID == "" {
		return entities.Batch{}, ErrGarmentNotFound
	}
	if b.Contains(g.ID) {
		return b, nil
	}
	if g.BatchID != "" && g.BatchID != b.ID {
		return entities.Batch{}, fmt.Errorf("%w: garment %s is in batch %s", ErrGarmentInOtherBatch, g.ID, g.BatchID)
	}
	if g.ClientID != b.ClientID {
		return entities.Batch{}, fmt.Errorf("%w: garment %s is owned by client %s", ErrGarmentOtherClient, g.ID, g.ClientID)
	}
	if b.Status == entities.BatchStatusEntregado {
		return entities.Batch{}, ErrBatchDelivered
	}

	previousBatch := b
	previousBatch.GarmentIDs = append([]string(nil), b.GarmentIDs...)
	previousGarment := g

	now := u.clock.Now()
	b.GarmentIDs = append(b.GarmentIDs, g.ID)
	if b.ActualCount() > b.ExpectedGarments {
		b.ExpectedGarments = b.ActualCount()
	}
	b.UpdatedAt = now

	saved, err := u.batches.Save(ctx, b)
	if err != nil {
		return entities.Batch{}, err
	}
	g.BatchID = b.ID
	g.LastUpdated = now
	if _, err := u.garments.Save(ctx, g); err != nil {
		u.revertBatch(ctx, previousBatch)
		return entities.Batch{}, err
	}

	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   b.ClientID,
		GarmentIDs: []string{g.ID},
		BatchID:    b.ID,
		Action:     entities.HistoryActionBatchGarmentAdd,
		Operator:   operator,
		Details:    fmt.Sprintf("garment added to batch #%d (%d/%d)", b.BatchNumber, b.ActualCount(), b.ExpectedGarments),
		Timestamp:  now,
	}); err != nil {
		u.revertGarments(ctx, []entities.Garment{previousGarment})
		u.revertBatch(ctx, previousBatch)
		return entities.Batch{}, err
	}
	return saved, nil
}

func (u *BatchUseCase) Progress(ctx context.Context, batchID string) (BatchProgress, error) {
	b, err := u.GetBatch(ctx, batchID)
	if err != nil {
		return BatchProgress{}, err
	}
	return progressOf(b), nil
}

// CompleteBatch marks a full batch as ready and notifies the client. A failed
// notification is logged and does not undo the completion.
func (u *BatchUseCase) CompleteBatch(ctx context.Context, batchID, operator string) (entities.Batch, error) {
	b, err := u.GetBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}
	if !b.IsComplete() {
		return entities.Batch{}, fmt.Errorf("%w: %d of %d garments", ErrBatchIncomplete, b.ActualCount(), b.ExpectedGarments)
	}
	if b.Status == entities.BatchStatusListo || b.Status == entities.BatchStatusEntregado {
		return entities.Batch{}, fmt.Errorf("%w: batch #%d is %s", ErrBatchAlreadyCompleted, b.BatchNumber, b.Status)
	}

	previous := b
	now := u.clock.Now()
	b.Status = entities.BatchStatusListo
	b.ProcessedAt = &now
	b.UpdatedAt = now

	saved, err := u.batches.Save(ctx, b)
	if err != nil {
		return entities.Batch{}, err
	}
	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   b.ClientID,
		GarmentIDs: b.GarmentIDs,
		BatchID:    b.ID,
		Action:     entities.HistoryActionBatchCompleted,
		Operator:   operator,
		Details:    fmt.Sprintf("batch #%d ready (%d garments)", b.BatchNumber, b.ActualCount()),
		Timestamp:  now,
	}); err != nil {
		u.revertBatch(ctx, previous)
		return entities.Batch{}, err
	}
	metrics.BatchesCompletedTotal.Inc()

	if u.notifier != nil {
		event := entities.NotificationEvent{
			Kind:      entities.NotificationBatchReady,
			ClientID:  b.ClientID,
			BatchID:   b.ID,
			CreatedAt: now,
		}
		if err := u.notifier.Notify(ctx, event); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			log.Warn().Err(err).Str("batch_id", b.ID).Msg("[batch][usecase] notification failed")
		}
	}
	return saved, nil
}

// DeleteBatch removes a batch whose members are all delivered; members are
// detached from it.
func (u *BatchUseCase) DeleteBatch(ctx context.Context, batchID, operator string) error {
	b, err := u.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}

	members := make([]entities.Garment, 0, len(b.GarmentIDs))
	for _, id := range b.GarmentIDs {
		g, err := u.garments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if g.ID == "" {
			continue
		}
		if g.Status != entities.GarmentStatusDelivered {
			return fmt.Errorf("%w: garment %s is %s", ErrBatchHasUndelivered, g.ID, g.Status)
		}
		members = append(members, g)
	}

	now := u.clock.Now()
	detached := make([]entities.Garment, 0, len(members))
	for _, g := range members {
		original := g
		g.BatchID = ""
		g.LastUpdated = now
		if _, err := u.garments.Save(ctx, g); err != nil {
			u.revertGarments(ctx, detached)
			return err
		}
		detached = append(detached, original)
	}
	if err := u.batches.Delete(ctx, b.ID); err != nil {
		u.revertGarments(ctx, detached)
		return err
	}

	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   b.ClientID,
		GarmentIDs: b.GarmentIDs,
		BatchID:    b.ID,
		Action:     entities.HistoryActionBatchDeleted,
		Operator:   operator,
		Details:    fmt.Sprintf("batch #%d deleted", b.BatchNumber),
		Timestamp:  now,
	}); err != nil {
		u.revertBatch(ctx, b)
		u.revertGarments(ctx, detached)
		return err
	}
	log.Info().Str("batch_id", b.ID).Msg("[batch][usecase] batch deleted")
	return nil
}

// SetStatus is the manual override of a batch status.
func (u *BatchUseCase) SetStatus(ctx context.Context, batchID string, status entities.BatchStatus, operator string) (entities.Batch, error) {
	if !status.Valid() {
		return entities.Batch{}, ErrInvalidStatus
	}
	b, err := u.GetBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.Status == status {
		return entities.Batch{}, ErrInvalidTransition
	}

	previous := b
	now := u.clock.Now()
	b.Status = status
	b.UpdatedAt = now
	saved, err := u.batches.Save(ctx, b)
	if err != nil {
		return entities.Batch{}, err
	}
	if err := u.history.record(ctx, entities.HistoryEntry{
		ClientID:   b.ClientID,
		GarmentIDs: b.GarmentIDs,
		BatchID:    b.ID,
		Action:     entities.HistoryActionBatchStatus,
		Operator:   operator,
		Details:    fmt.Sprintf("%s -> %s", previous.Status, status),
		Timestamp:  now,
	}); err != nil {
		u.revertBatch(ctx, previous)
		return entities.Batch{}, err
	}
	return saved, nil
}

func (u *BatchUseCase) GetBatch(ctx context.Context, batchID string) (entities.Batch, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return entities.Batch{}, ErrInvalidBatchID
	}
	b, err := u.batches.GetByID(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.ID == "" {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func (u *BatchUseCase) ListBatches(ctx context.Context, clientID string) ([]entities.Batch, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return u.batches.List(ctx)
	}
	return u.batches.ListByClient(ctx, clientID)
}

func (u *BatchUseCase) revertGarments(ctx context.Context, originals []entities.Garment) {
	for _, g := range originals {
		if _, err := u.garments.Save(ctx, g); err != nil {
			log.Error().Err(err).Str("garment_id", g.ID).Msg("[batch][usecase] garment revert failed")
		}
	}
}

func (u *BatchUseCase) revertBatch(ctx context.Context, previous entities.Batch) {
	if _, err := u.batches.Save(ctx, previous); err != nil {
		log.Error().Err(err).Str("batch_id", previous.ID).Msg("[batch][usecase] batch revert failed")
	}
}

func (u *BatchUseCase) revertBatchCreation(ctx context.Context, batchID string) {
	if err := u.batches.Delete(ctx, batchID); err != nil {
		log.Error().Err(err).Str("batch_id", batchID).Msg("[batch][usecase] batch removal failed")
	}
}
