package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"
)

// In-memory stores used by the default "memory" storage driver and by
// scenario tests. Every store returns copies, so callers never share state
// with the store.

type ClientMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Client
}

var _ interfaces.IClientRepository = (*ClientMemoryRepository)(nil)

func NewClientMemoryRepository(seed ...entities.Client) *ClientMemoryRepository {
	r := &ClientMemoryRepository{items: make(map[string]entities.Client, len(seed))}
	for _, c := range seed {
		r.items[c.ID] = c
	}
	return r
}

func (r *ClientMemoryRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *ClientMemoryRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c
	return c, nil
}

func (r *ClientMemoryRepository) List(_ context.Context) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Client, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type GarmentMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]entities.Garment
	byRFID map[string]string
}

var _ interfaces.IGarmentRepository = (*GarmentMemoryRepository)(nil)

func NewGarmentMemoryRepository() *GarmentMemoryRepository {
	return &GarmentMemoryRepository{
		items:  make(map[string]entities.Garment),
		byRFID: make(map[string]string),
	}
}

func (r *GarmentMemoryRepository) GetByID(_ context.Context, id string) (entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.items[id]
	if !ok {
		return entities.Garment{}, nil
	}
	return cloneGarment(g), nil
}

func (r *GarmentMemoryRepository) GetByRFID(_ context.Context, rfidCode string) (entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byRFID[rfidCode]
	if !ok {
		return entities.Garment{}, nil
	}
	return cloneGarment(r.items[id]), nil
}

func (r *GarmentMemoryRepository) Save(_ context.Context, g entities.Garment) (entities.Garment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.items[g.ID]; ok && prev.RFIDCode != g.RFIDCode {
		delete(r.byRFID, prev.RFIDCode)
	}
	r.items[g.ID] = cloneGarment(g)
	if g.RFIDCode != "" {
		r.byRFID[g.RFIDCode] = g.ID
	}
	return cloneGarment(g), nil
}

func (r *GarmentMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.items[id]; ok {
		delete(r.byRFID, g.RFIDCode)
		delete(r.items, id)
	}
	return nil
}

func (r *GarmentMemoryRepository) ListByClient(_ context.Context, clientID string) ([]entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Garment, 0)
	for _, g := range r.items {
		if g.ClientID == clientID {
			out = append(out, cloneGarment(g))
		}
	}
	sortGarments(out)
	return out, nil
}

func (r *GarmentMemoryRepository) List(_ context.Context) ([]entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Garment, 0, len(r.items))
	for _, g := range r.items {
		out = append(out, cloneGarment(g))
	}
	sortGarments(out)
	return out, nil
}

type BatchMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Batch
}

var _ interfaces.IBatchRepository = (*BatchMemoryRepository)(nil)

func NewBatchMemoryRepository() *BatchMemoryRepository {
	return &BatchMemoryRepository{items: make(map[string]entities.Batch)}
}

func (r *BatchMemoryRepository) GetByID(_ context.Context, id string) (entities.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return entities.Batch{}, nil
	}
	return cloneBatch(b), nil
}

func (r *BatchMemoryRepository) Save(_ context.Context, b entities.Batch) (entities.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = cloneBatch(b)
	return cloneBatch(b), nil
}

func (r *BatchMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *BatchMemoryRepository) ListByClient(_ context.Context, clientID string) ([]entities.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Batch, 0)
	for _, b := range r.items {
		if b.ClientID == clientID {
			out = append(out, cloneBatch(b))
		}
	}
	sortBatches(out)
	return out, nil
}

func (r *BatchMemoryRepository) List(_ context.Context) ([]entities.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Batch, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, cloneBatch(b))
	}
	sortBatches(out)
	return out, nil
}

// HistoryMemoryRepository keeps entries in append order.
type HistoryMemoryRepository struct {
	mu      sync.RWMutex
	entries []entities.HistoryEntry
}

var _ interfaces.IHistoryRepository = (*HistoryMemoryRepository)(nil)

func NewHistoryMemoryRepository() *HistoryMemoryRepository {
	return &HistoryMemoryRepository{}
}

func (r *HistoryMemoryRepository) Append(_ context.Context, e entities.HistoryEntry) (entities.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.GarmentIDs = append([]string{}, e.GarmentIDs...)
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *HistoryMemoryRepository) ListByGarment(_ context.Context, garmentID string) ([]entities.HistoryEntry, error) {
	return r.filter(func(e entities.HistoryEntry) bool {
		for _, id := range e.GarmentIDs {
			if id == garmentID {
				return true
			}
		}
		return false
	}), nil
}

func (r *HistoryMemoryRepository) ListByClient(_ context.Context, clientID string) ([]entities.HistoryEntry, error) {
	return r.filter(func(e entities.HistoryEntry) bool { return e.ClientID == clientID }), nil
}

// All returns every entry in append order.
func (r *HistoryMemoryRepository) All() []entities.HistoryEntry {
	return r.filter(func(entities.HistoryEntry) bool { return true })
}

func (r *HistoryMemoryRepository) filter(keep func(entities.HistoryEntry) bool) []entities.HistoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.HistoryEntry, 0)
	for _, e := range r.entries {
		if keep(e) {
			e.GarmentIDs = append([]string{}, e.GarmentIDs...)
			out = append(out, e)
		}
	}
	return out
}

// SequenceMemoryRepository hands out decimal string ids and batch numbers,
// both starting at 1.
type SequenceMemoryRepository struct {
	mu     sync.Mutex
	lastID int64
	lastNo int64
}

var _ interfaces.ISequenceRepository = (*SequenceMemoryRepository)(nil)

func NewSequenceMemoryRepository() *SequenceMemoryRepository {
	return &SequenceMemoryRepository{}
}

func (r *SequenceMemoryRepository) NextID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return strconv.FormatInt(r.lastID, 10), nil
}

func (r *SequenceMemoryRepository) NextBatchNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastNo++
	return r.lastNo, nil
}
