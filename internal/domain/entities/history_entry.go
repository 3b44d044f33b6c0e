package entities

import "time"

// HistoryAction names the operation recorded by a HistoryEntry.
type HistoryAction string

const (
	HistoryActionGarmentCreated  HistoryAction = "garment_created"
	HistoryActionStatusChange    HistoryAction = "status_change"
	HistoryActionBoardMove       HistoryAction = "board_move"
	HistoryActionNoteAdded       HistoryAction = "note_added"
	HistoryActionBatchCreated    HistoryAction = "batch_created"
	HistoryActionBatchGarmentAdd HistoryAction = "batch_garment_added"
	HistoryActionBatchStatus     HistoryAction = "batch_status_change"
	HistoryActionBatchCompleted  HistoryAction = "batch_completed"
	HistoryActionBatchDeleted    HistoryAction = "batch_deleted"
	HistoryActionIntakeConfirmed HistoryAction = "intake_confirmed"
)

// HistoryEntry is an append-only audit record. Entries are never updated or
// deleted.
type HistoryEntry struct {
	ID         string        `json:"id"`
	ClientID   string        `json:"client_id"`
	GarmentIDs []string      `json:"garment_ids"`
	BatchID    string        `json:"batch_id,omitempty"`
	Action     HistoryAction `json:"action"`
	Operator   string        `json:"operator"`
	Details    string        `json:"details"`
	Timestamp  time.Time     `json:"timestamp"`
}
