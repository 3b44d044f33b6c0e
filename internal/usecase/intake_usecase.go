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

// IIntakeUseCase exposes the intake wizard addressed by session id. Every
// call reopens the persisted session, so a reload resumes where the operator
// left off.
type IIntakeUseCase interface {
	Open(ctx context.Context, sessionID, preselectedClientID string) (*IntakeSession, error)
	State(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error)
	SelectClient(ctx context.Context, sessionID, clientID string) (entities.IntakeSnapshot, error)
	CaptureFromScan(ctx context.Context, sessionID string, tags []entities.TagObservation) (entities.IntakeSnapshot, int, error)
	FinalizeBatchMetadata(ctx context.Context, sessionID string, attrs entities.GarmentAttributes) (entities.IntakeSnapshot, error)
	ResolveDraft(ctx context.Context, sessionID string, index int, attrs entities.GarmentAttributes) (entities.IntakeSnapshot, error)
	DiscardUnresolved(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error)
	RemoveGarment(ctx context.Context, sessionID string, index int) (entities.IntakeSnapshot, error)
	ClearAll(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error)
	Advance(ctx context.Context, sessionID, operator string) (entities.IntakeSnapshot, *IntakeReceipt, error)
	Back(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error)
	Reset(ctx context.Context, sessionID string) error
}

// IntakeReceipt is the outcome of a confirmed intake.
type IntakeReceipt struct {
	SessionID string             `json:"session_id"`
	ClientID  string             `json:"client_id"`
	Garments  []entities.Garment `json:"garments"`
	Batch     *entities.Batch    `json:"batch,omitempty"`
}

type IntakeUseCase struct {
	clients   interfaces.IClientRepository
	garments  interfaces.IGarmentRepository
	sequences interfaces.ISequenceRepository
	batches   *BatchUseCase
	history   historyRecorder
	store     interfaces.IIntakeSessionStore
	clock     interfaces.IClock
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	clients interfaces.IClientRepository,
	garments interfaces.IGarmentRepository,
	sequences interfaces.ISequenceRepository,
	batches *BatchUseCase,
	history interfaces.IHistoryRepository,
	store interfaces.IIntakeSessionStore,
	clock interfaces.IClock,
) *IntakeUseCase {
	return &IntakeUseCase{
		clients:   clients,
		garments:  garments,
		sequences: sequences,
		batches:   batches,
		history:   historyRecorder{repo: history, clock: clock},
		store:     store,
		clock:     clock,
	}
}

// Open loads the persisted session (or starts a new one). A preselected client
// is applied only when the stored session has none.
func (u *IntakeUseCase) Open(ctx context.Context, sessionID, preselectedClientID string) (*IntakeSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	state, found, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		state = entities.IntakeSnapshot{CurrentStep: entities.IntakeStepClientSelection}
	}
	s := &IntakeSession{id: sessionID, state: state, uc: u}

	preselectedClientID = strings.TrimSpace(preselectedClientID)
	if preselectedClientID != "" && s.state.SelectedClientID == "" {
		if err := s.SelectClient(ctx, preselectedClientID); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (u *IntakeUseCase) State(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error) {
	s, err := u.Open(ctx, sessionID, "")
	if err != nil {
		return entities.IntakeSnapshot{}, err
	}
	return s.Snapshot(), nil
}

func (u *IntakeUseCase) SelectClient(ctx context.Context, sessionID, clientID string) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		return s.SelectClient(ctx, clientID)
	})
}

func (u *IntakeUseCase) CaptureFromScan(ctx context.Context, sessionID string, tags []entities.TagObservation) (entities.IntakeSnapshot, int, error) {
	added := 0
	snap, err := u.with(ctx, sessionID, func(s *IntakeSession) error {
		n, err := s.CaptureFromScan(ctx, tags)
		added = n
		return err
	})
	return snap, added, err
}

func (u *IntakeUseCase) FinalizeBatchMetadata(ctx context.Context, sessionID string, attrs entities.GarmentAttributes) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		_, err := s.FinalizeBatchMetadata(ctx, attrs)
		return err
	})
}

func (u *IntakeUseCase) ResolveDraft(ctx context.Context, sessionID string, index int, attrs entities.GarmentAttributes) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		return s.ResolveDraft(ctx, index, attrs)
	})
}

func (u *IntakeUseCase) DiscardUnresolved(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		_, err := s.DiscardUnresolved(ctx)
		return err
	})
}

func (u *IntakeUseCase) RemoveGarment(ctx context.Context, sessionID string, index int) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		return s.RemoveGarment(ctx, index)
	})
}

func (u *IntakeUseCase) ClearAll(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		return s.ClearAll(ctx)
	})
}

func (u *IntakeUseCase) Advance(ctx context.Context, sessionID, operator string) (entities.IntakeSnapshot, *IntakeReceipt, error) {
	var receipt *IntakeReceipt
	snap, err := u.with(ctx, sessionID, func(s *IntakeSession) error {
		r, err := s.Advance(ctx, operator)
		receipt = r
		return err
	})
	return snap, receipt, err
}

func (u *IntakeUseCase) Back(ctx context.Context, sessionID string) (entities.IntakeSnapshot, error) {
	return u.with(ctx, sessionID, func(s *IntakeSession) error {
		return s.Back(ctx)
	})
}

func (u *IntakeUseCase) Reset(ctx context.Context, sessionID string) error {
	s, err := u.Open(ctx, sessionID, "")
	if err != nil {
		return err
	}
	return s.Reset(ctx)
}

func (u *IntakeUseCase) with(ctx context.Context, sessionID string, fn func(s *IntakeSession) error) (entities.IntakeSnapshot, error) {
	s, err := u.Open(ctx, sessionID, "")
	if err != nil {
		return entities.IntakeSnapshot{}, err
	}
	if err := fn(s); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// IntakeSession is one operator's intake wizard:
//
//	ClientSelection (1) -> GarmentCapture (2) -> Confirmation (3) -> commit, back to 1
//
// Every mutating method persists the session before returning. When the
// store write fails the in-memory state is rolled back and the error returned.
type IntakeSession struct {
	id    string
	state entities.IntakeSnapshot
	uc    *IntakeUseCase
}

func (s *IntakeSession) ID() string { return s.id }

// Snapshot returns a copy of the current state.
func (s *IntakeSession) Snapshot() entities.IntakeSnapshot {
	out := s.state
	out.ScannedGarments = append([]entities.Draft(nil), s.state.ScannedGarments...)
	return out
}

func (s *IntakeSession) Step() entities.IntakeStep { return s.state.CurrentStep }

// SelectClient picks the client in step 1 and moves to step 2. Called from
// step 2 it changes the client and discards every captured garment. Drafts
// kept after going back to step 1 are discarded when the client differs.
func (s *IntakeSession) SelectClient(ctx context.Context, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrInvalidClientID
	}
	if s.state.CurrentStep == entities.IntakeStepConfirmation {
		return ErrInvalidStep
	}

	client, err := s.uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrClientNotFound
	}

	return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		if st.CurrentStep == entities.IntakeStepGarmentCapture || st.SelectedClientID != client.ID {
			st.ScannedGarments = nil
		}
		st.SelectedClientID = client.ID
		st.CurrentStep = entities.IntakeStepGarmentCapture
	})
}

// CaptureFromScan turns every new tag into an unresolved draft. Tags already
// in the session are ignored. It returns how many drafts were added.
func (s *IntakeSession) CaptureFromScan(ctx context.Context, tags []entities.TagObservation) (int, error) {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return 0, ErrInvalidStep
	}

	fresh := make([]entities.Draft, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tag := strings.TrimSpace(t.TagID)
		if tag == "" || s.state.HasTag(tag) {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		scannedAt := t.Timestamp
		if scannedAt.IsZero() {
			scannedAt = s.uc.clock.Now()
		}
		fresh = append(fresh, entities.UnresolvedDraft{Tag: tag, ScannedAt: scannedAt})
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	err := s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		st.ScannedGarments = append(st.ScannedGarments, fresh...)
	})
	if err != nil {
		return 0, err
	}
	return len(fresh), nil
}

// FinalizeBatchMetadata applies one shared attribute set to every unresolved
// draft. It returns how many drafts were resolved.
func (s *IntakeSession) FinalizeBatchMetadata(ctx context.Context, attrs entities.GarmentAttributes) (int, error) {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return 0, ErrInvalidStep
	}
	attrs, err := validateAttributes(attrs)
	if err != nil {
		return 0, err
	}
	pending := s.state.UnresolvedCount()
	if pending == 0 {
		return 0, nil
	}

	err = s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		for i, d := range st.ScannedGarments {
			if u, ok := d.(entities.UnresolvedDraft); ok {
				st.ScannedGarments[i] = entities.ResolvedDraft{
					Tag:        u.Tag,
					ScannedAt:  u.ScannedAt,
					Attributes: attrs,
					Grouped:    true,
				}
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return pending, nil
}

// ResolveDraft confirms the metadata of a single draft (per-tag path). It can
// also be used to edit an already resolved draft.
func (s *IntakeSession) ResolveDraft(ctx context.Context, index int, attrs entities.GarmentAttributes) error {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return ErrInvalidStep
	}
	if index < 0 || index >= len(s.state.ScannedGarments) {
		return ErrInvalidDraftIndex
	}
	attrs, err := validateAttributes(attrs)
	if err != nil {
		return err
	}

	return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		d := st.ScannedGarments[index]
		resolved := entities.ResolvedDraft{Tag: d.TagID(), Attributes: attrs}
		switch v := d.(type) {
		case entities.UnresolvedDraft:
			resolved.ScannedAt = v.ScannedAt
		case entities.ResolvedDraft:
			resolved.ScannedAt = v.ScannedAt
			resolved.Grouped = v.Grouped
		}
		st.ScannedGarments[index] = resolved
	})
}

// DiscardUnresolved is the cancel path of batch metadata: drafts the operator
// did not confirm are removed from the session entirely.
func (s *IntakeSession) DiscardUnresolved(ctx context.Context) (int, error) {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return 0, ErrInvalidStep
	}
	pending := s.state.UnresolvedCount()
	if pending == 0 {
		return 0, nil
	}

	err := s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		kept := make([]entities.Draft, 0, len(st.ScannedGarments)-pending)
		for _, d := range st.ScannedGarments {
			if d.Resolved() {
				kept = append(kept, d)
			}
		}
		st.ScannedGarments = kept
	})
	if err != nil {
		return 0, err
	}
	return pending, nil
}

func (s *IntakeSession) RemoveGarment(ctx context.Context, index int) error {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return ErrInvalidStep
	}
	if index < 0 || index >= len(s.state.ScannedGarments) {
		return ErrInvalidDraftIndex
	}
	return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		st.ScannedGarments = append(st.ScannedGarments[:index:index], st.ScannedGarments[index+1:]...)
	})
}

func (s *IntakeSession) ClearAll(ctx context.Context) error {
	if s.state.CurrentStep != entities.IntakeStepGarmentCapture {
		return ErrInvalidStep
	}
	return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
		st.ScannedGarments = nil
	})
}

// Advance moves one step forward. From the confirmation step it commits the
// intake, resets the session and returns the receipt.
func (s *IntakeSession) Advance(ctx context.Context, operator string) (*IntakeReceipt, error) {
	switch s.state.CurrentStep {
	case entities.IntakeStepClientSelection:
		if s.state.SelectedClientID == "" {
			return nil, ErrNoClientSelected
		}
		return nil, s.mutate(ctx, func(st *entities.IntakeSnapshot) {
			st.CurrentStep = entities.IntakeStepGarmentCapture
		})
	case entities.IntakeStepGarmentCapture:
		if err := s.readyToConfirm(); err != nil {
			return nil, err
		}
		return nil, s.mutate(ctx, func(st *entities.IntakeSnapshot) {
			st.CurrentStep = entities.IntakeStepConfirmation
		})
	case entities.IntakeStepConfirmation:
		return s.confirm(ctx, operator)
	}
	return nil, ErrInvalidStep
}

func (s *IntakeSession) Back(ctx context.Context) error {
	switch s.state.CurrentStep {
	case entities.IntakeStepGarmentCapture:
		return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
			st.CurrentStep = entities.IntakeStepClientSelection
		})
	case entities.IntakeStepConfirmation:
		return s.mutate(ctx, func(st *entities.IntakeSnapshot) {
			st.CurrentStep = entities.IntakeStepGarmentCapture
		})
	}
	return ErrInvalidStep
}

// Reset discards the session, in memory and in the store.
func (s *IntakeSession) Reset(ctx context.Context) error {
	if err := s.uc.store.Delete(ctx, s.id); err != nil {
		return err
	}
	s.state = entities.IntakeSnapshot{CurrentStep: entities.IntakeStepClientSelection}
	return nil
}

func (s *IntakeSession) readyToConfirm() error {
	if s.state.SelectedClientID == "" {
		return ErrNoClientSelected
	}
	if len(s.state.ScannedGarments) == 0 {
		return ErrNoDrafts
	}
	if n := s.state.UnresolvedCount(); n > 0 {
		return fmt.Errorf("%w: %d pending", ErrUnresolvedDrafts, n)
	}
	return nil
}

func (s *IntakeSession) confirm(ctx context.Context, operator string) (*IntakeReceipt, error) {
	if err := s.readyToConfirm(); err != nil {
		return nil, err
	}
	uc := s.uc
	clientID := s.state.SelectedClientID

	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, ErrClientNotFound
	}

	grouped := false
	for _, d := range s.state.ScannedGarments {
		existing, err := uc.garments.GetByRFID(ctx, d.TagID())
		if err != nil {
			return nil, err
		}
		if existing.ID != "" {
			return nil, fmt.Errorf("%w: %s", ErrRFIDAlreadyRegistered, d.TagID())
		}
		if r, ok := d.(entities.ResolvedDraft); ok && r.Grouped {
			grouped = true
		}
	}

	now := uc.clock.Now()
	created := make([]entities.Garment, 0, len(s.state.ScannedGarments))
	for _, d := range s.state.ScannedGarments {
		r := d.(entities.ResolvedDraft)
		id, err := uc.sequences.NextID(ctx)
		if err != nil {
			s.discardGarments(ctx, created)
			return nil, err
		}
		g := entities.Garment{
			ID:                id,
			RFIDCode:          r.Tag,
			GarmentAttributes: r.Attributes,
			ClientID:          clientID,
			Status:            entities.GarmentStatusReceived,
			ReceivedAt:        now,
			LastUpdated:       now,
		}
		saved, err := uc.garments.Save(ctx, g)
		if err != nil {
			s.discardGarments(ctx, created)
			return nil, err
		}
		created = append(created, saved)
	}

	ids := make([]string, 0, len(created))
	for _, g := range created {
		ids = append(ids, g.ID)
	}

	receipt := &IntakeReceipt{SessionID: s.id, ClientID: clientID, Garments: created}
	if grouped {
		// The intake_confirmed entry below covers the batch creation.
		b, err := uc.batches.createBatch(ctx, clientID, ids, len(ids), operator, false)
		if err != nil {
			s.discardGarments(ctx, created)
			return nil, err
		}
		receipt.Batch = &b
		for i := range receipt.Garments {
			receipt.Garments[i].BatchID = b.ID
		}
	}

	details := fmt.Sprintf("%d garments received", len(created))
	batchID := ""
	if receipt.Batch != nil {
		batchID = receipt.Batch.ID
		details += fmt.Sprintf(" in batch #%d", receipt.Batch.BatchNumber)
	}
	if err := uc.history.record(ctx, entities.HistoryEntry{
		ClientID:   clientID,
		GarmentIDs: ids,
		BatchID:    batchID,
		Action:     entities.HistoryActionIntakeConfirmed,
		Operator:   operator,
		Details:    details,
		Timestamp:  now,
	}); err != nil {
		// Garments and batch are already committed; the audit gap is logged.
		log.Error().Err(err).Str("session_id", s.id).Msg("[intake][usecase] history append failed after commit")
	}

	if err := s.Reset(ctx); err != nil {
		log.Error().Err(err).Str("session_id", s.id).Msg("[intake][usecase] session reset failed after commit")
	}

	metrics.IntakeConfirmationsTotal.Inc()
	metrics.GarmentsCreatedTotal.Add(float64(len(created)))
	log.Info().
		Str("session_id", s.id).
		Str("client_id", clientID).
		Int("garments", len(created)).
		Str("batch_id", batchID).
		Msg("[intake][usecase] intake confirmed")
	return receipt, nil
}

func (s *IntakeSession) discardGarments(ctx context.Context, created []entities.Garment) {
	for _, g := range created {
		if err := s.uc.garments.Delete(ctx, g.ID); err != nil {
			log.Error().Err(err).Str("garment_id", g.ID).Msg("[intake][usecase] garment cleanup failed")
		}
	}
}

// mutate applies fn to a copy of the state, persists it and only then makes
// it current.
func (s *IntakeSession) mutate(ctx context.Context, fn func(st *entities.IntakeSnapshot)) error {
	next := s.Snapshot()
	fn(&next)
	next.UpdatedAt = s.uc.clock.Now()
	if err := s.uc.store.Save(ctx, s.id, next); err != nil {
		log.Error().Err(err).Str("session_id", s.id).Msg("[intake][usecase] session persist failed")
		return err
	}
	s.state = next
	return nil
}

func validateAttributes(attrs entities.GarmentAttributes) (entities.GarmentAttributes, error) {
	attrs = attrs.Normalize()
	if attrs.Type == "" || attrs.Color == "" {
		return entities.GarmentAttributes{}, ErrMissingTypeOrColor
	}
	if !attrs.Condition.Valid() || !attrs.ServiceType.Valid() || !attrs.Priority.Valid() {
		return entities.GarmentAttributes{}, ErrInvalidAttributes
	}
	return attrs, nil
}
