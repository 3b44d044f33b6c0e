package request

import (
	"strings"

	"lavanderia_rfid/internal/domain/entities"
)

// StatusChangeRequest is the edit-form status change of one garment.
type StatusChangeRequest struct {
	Status   string `json:"status" binding:"required"`
	Note     string `json:"note"`
	Operator string `json:"operator"`
}

type BulkStatusRequest struct {
	GarmentIDs []string `json:"garment_ids" binding:"required,min=1"`
	Status     string   `json:"status" binding:"required"`
	Note       string   `json:"note"`
	Operator   string   `json:"operator"`
}

// BoardMoveRequest is sent when a card is dropped on another board column.
type BoardMoveRequest struct {
	Status   string `json:"status" binding:"required"`
	Operator string `json:"operator"`
}

type NoteRequest struct {
	Text     string `json:"text" binding:"required"`
	Operator string `json:"operator"`
}

// GarmentStatus normalizes free-form input ("In Process", "in-process") to
// the canonical status value. Unknown values are returned as-is and rejected
// by the use case.
func GarmentStatus(raw string) entities.GarmentStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return entities.GarmentStatus(s)
}
