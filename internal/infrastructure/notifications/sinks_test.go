package notifications

import (
	"context"
	"testing"

	"lavanderia_rfid/internal/domain/entities"
)

func TestLogSink(t *testing.T) {
	err := LogSink{}.Notify(context.Background(), entities.NotificationEvent{
		Kind:     entities.NotificationBatchReady,
		ClientID: "c1",
		BatchID:  "b1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
