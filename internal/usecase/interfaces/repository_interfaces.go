package interfaces

import (
	"context"

	"lavanderia_rfid/internal/domain/entities"
)

// Repository contract shared by every implementation:
//   - lookups of a missing id return a zero-value entity (empty ID) and a nil error;
//   - an error is returned only when the backing store itself fails.

// IClientRepository reads the client directory.
type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

// IGarmentRepository persists Garment records. Save is an upsert.
type IGarmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Garment, error)
	GetByRFID(ctx context.Context, rfidCode string) (entities.Garment, error)
	Save(ctx context.Context, g entities.Garment) (entities.Garment, error)
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]entities.Garment, error)
	List(ctx context.Context) ([]entities.Garment, error)
}

// IBatchRepository persists Batch records. Save is an upsert.
type IBatchRepository interface {
	GetByID(ctx context.Context, id string) (entities.Batch, error)
	Save(ctx context.Context, b entities.Batch) (entities.Batch, error)
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]entities.Batch, error)
	List(ctx context.Context) ([]entities.Batch, error)
}

// IHistoryRepository is the append-only audit log.
type IHistoryRepository interface {
	Append(ctx context.Context, e entities.HistoryEntry) (entities.HistoryEntry, error)
	ListByGarment(ctx context.Context, garmentID string) ([]entities.HistoryEntry, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.HistoryEntry, error)
}

// ISequenceRepository hands out identifiers.
type ISequenceRepository interface {
	NextID(ctx context.Context) (string, error)
	NextBatchNumber(ctx context.Context) (int64, error)
}
