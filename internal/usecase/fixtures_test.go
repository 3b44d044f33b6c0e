package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"lavanderia_rfid/internal/adapter/persistence/repository"
	"lavanderia_rfid/internal/domain/entities"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(at time.Time) *fakeClock { return &fakeClock{now: at} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingSink struct {
	events []entities.NotificationEvent
	err    error
}

func (s *recordingSink) Notify(_ context.Context, e entities.NotificationEvent) error {
	s.events = append(s.events, e)
	return s.err
}

// env wires every use case over the in-memory stores.
type env struct {
	clock    *fakeClock
	clients  *repository.ClientMemoryRepository
	garments *repository.GarmentMemoryRepository
	batches  *repository.BatchMemoryRepository
	history  *repository.HistoryMemoryRepository
	seq      *repository.SequenceMemoryRepository
	store    *repository.IntakeSessionMemoryStore
	sink     *recordingSink

	lifecycle *LifecycleUseCase
	batch     *BatchUseCase
	intake    *IntakeUseCase
	monitor   *DelayMonitor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		clock: newFakeClock(t0),
		clients: repository.NewClientMemoryRepository(
			entities.Client{ID: "c1", Name: "Ana"},
			entities.Client{ID: "c2", Name: "Bruno"},
		),
		garments: repository.NewGarmentMemoryRepository(),
		batches:  repository.NewBatchMemoryRepository(),
		history:  repository.NewHistoryMemoryRepository(),
		seq:      repository.NewSequenceMemoryRepository(),
		store:    repository.NewIntakeSessionMemoryStore(),
		sink:     &recordingSink{},
	}
	e.lifecycle = NewLifecycleUseCase(e.garments, e.history, e.clock)
	e.batch = NewBatchUseCase(e.clients, e.garments, e.batches, e.seq, e.history, e.sink, e.clock)
	e.intake = NewIntakeUseCase(e.clients, e.garments, e.seq, e.batch, e.history, e.store, e.clock)
	e.monitor = NewDelayMonitor(e.garments, e.batches, e.clock, DefaultExpectedDays)
	return e
}

// addGarment stores a received garment directly, bypassing intake.
func (e *env) addGarment(t *testing.T, id, clientID string) entities.Garment {
	t.Helper()
	g := entities.Garment{
		ID:                id,
		RFIDCode:          "TAG-" + id,
		GarmentAttributes: entities.DefaultGarmentAttributes(),
		ClientID:          clientID,
		Status:            entities.GarmentStatusReceived,
		ReceivedAt:        e.clock.Now(),
		LastUpdated:       e.clock.Now(),
	}
	saved, err := e.garments.Save(context.Background(), g)
	if err != nil {
		t.Fatalf("seed garment: %v", err)
	}
	return saved
}

func (e *env) garment(t *testing.T, id string) entities.Garment {
	t.Helper()
	g, err := e.garments.GetByID(context.Background(), id)
	if err != nil || g.ID == "" {
		t.Fatalf("garment %s not found (err=%v)", id, err)
	}
	return g
}

func shirt() entities.GarmentAttributes {
	return entities.GarmentAttributes{Type: "shirt", Color: "white"}
}
