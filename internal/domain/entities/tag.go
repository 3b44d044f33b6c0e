package entities

import "time"

// TagObservation is one read reported by an RFID reader.
type TagObservation struct {
	TagID          string    `json:"tag_id"`
	SignalStrength int       `json:"signal_strength"` // dBm
	Antenna        int       `json:"antenna"`
	Timestamp      time.Time `json:"timestamp"`
}

// NotificationKind identifies an outbound notification event.
type NotificationKind string

const (
	NotificationBatchReady NotificationKind = "batch_ready"
)

// NotificationEvent is handed to the notification sink. Text templating is the
// sink's concern.
type NotificationEvent struct {
	Kind      NotificationKind `json:"kind"`
	ClientID  string           `json:"client_id"`
	BatchID   string           `json:"batch_id"`
	CreatedAt time.Time        `json:"created_at"`
}
