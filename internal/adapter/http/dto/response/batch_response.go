package response

import (
	"time"

	"lavanderia_rfid/internal/domain/entities"
)

type BatchResponse struct {
	ID               string     `json:"id"`
	BatchNumber      int64      `json:"batch_number"`
	ClientID         string     `json:"client_id"`
	GarmentIDs       []string   `json:"garment_ids"`
	ExpectedGarments int        `json:"expected_garments"`
	ActualGarments   int        `json:"actual_garments"`
	Progress         int        `json:"progress"`
	IsComplete       bool       `json:"is_complete"`
	Status           string     `json:"status"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromBatch(b entities.Batch) BatchResponse {
	ids := b.GarmentIDs
	if ids == nil {
		ids = []string{}
	}
	return BatchResponse{
		ID:               b.ID,
		BatchNumber:      b.BatchNumber,
		ClientID:         b.ClientID,
		GarmentIDs:       ids,
		ExpectedGarments: b.ExpectedGarments,
		ActualGarments:   b.ActualCount(),
		Progress:         b.Progress(),
		IsComplete:       b.IsComplete(),
		Status:           string(b.Status),
		ProcessedAt:      b.ProcessedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromBatches(list []entities.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBatch(b))
	}
	return out
}
