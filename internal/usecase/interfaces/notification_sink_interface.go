package interfaces

import (
	"context"

	"lavanderia_rfid/internal/domain/entities"
)

// INotificationSink abstracts client notification dispatch (WhatsApp, SMS,
// e-mail...). Callers treat it as fire-and-forget: a returned error is logged
// and never rolls back the state change that triggered it.
type INotificationSink interface {
	Notify(ctx context.Context, event entities.NotificationEvent) error
}
