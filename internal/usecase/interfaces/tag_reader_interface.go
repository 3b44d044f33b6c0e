package interfaces

import (
	"context"

	"lavanderia_rfid/internal/domain/entities"
)

// ITagReader abstracts an RFID reader. Scans fail with errs.ErrNotConnected
// unless the reader is connected.
type ITagReader interface {
	Connect() error
	Disconnect() error
	IsConnected() bool
	ScanSingle(ctx context.Context) (entities.TagObservation, error)
	// ScanBatch reads until the reader decides the group is exhausted.
	// onRound, when non-nil, receives every flushed round as it happens.
	ScanBatch(ctx context.Context, onRound func([]entities.TagObservation)) ([]entities.TagObservation, error)
}
