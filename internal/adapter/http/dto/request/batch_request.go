package request

import (
	"strings"

	"lavanderia_rfid/internal/domain/entities"
)

type CreateBatchRequest struct {
	ClientID         string   `json:"client_id" binding:"required"`
	GarmentIDs       []string `json:"garment_ids"`
	ExpectedGarments int      `json:"expected_garments"`
	Operator         string   `json:"operator"`
}

// Expected falls back to the number of listed garments when the caller did
// not send an expected count.
func (r CreateBatchRequest) Expected() int {
	if r.ExpectedGarments == 0 {
		return len(r.GarmentIDs)
	}
	return r.ExpectedGarments
}

type AddGarmentRequest struct {
	GarmentID string `json:"garment_id" binding:"required"`
	Operator  string `json:"operator"`
}

type BatchStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Operator string `json:"operator"`
}

// OperatorRequest is the optional body of actions that only need to know who
// performed them.
type OperatorRequest struct {
	Operator string `json:"operator"`
}

func BatchStatus(raw string) entities.BatchStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return entities.BatchStatus(s)
}
