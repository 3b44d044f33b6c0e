package interfaces

import (
	"context"

	"lavanderia_rfid/internal/domain/entities"
)

// IIntakeSessionStore is the recoverable side-store for intake sessions,
// keyed by session id. Save must be durable before it returns.
type IIntakeSessionStore interface {
	Load(ctx context.Context, sessionID string) (snapshot entities.IntakeSnapshot, found bool, err error)
	Save(ctx context.Context, sessionID string, snapshot entities.IntakeSnapshot) error
	Delete(ctx context.Context, sessionID string) error
}
