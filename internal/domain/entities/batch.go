package entities

import (
	"math"
	"time"
)

// BatchStatus mirrors aggregate garment progress but is set independently,
// so an operator can override it.
type BatchStatus string

const (
	BatchStatusRecibido  BatchStatus = "recibido"
	BatchStatusEnProceso BatchStatus = "en_proceso"
	BatchStatusListo     BatchStatus = "listo"
	BatchStatusEntregado BatchStatus = "entregado"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchStatusRecibido, BatchStatusEnProceso, BatchStatusListo, BatchStatusEntregado:
		return true
	}
	return false
}

// Batch groups garments of one client that travel together.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
type Batch struct {
	ID               string      `json:"id"`
	BatchNumber      int64       `json:"batch_number"`
	ClientID         string      `json:"client_id"`
	GarmentIDs       []string    `json:"garment_ids"`
	ExpectedGarments int         `json:"expected_garments"`
	Status           BatchStatus `json:"status"`
	ProcessedAt      *time.Time  `json:"processed_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (b Batch) ActualCount() int {
	return len(b.GarmentIDs)
}

func (b Batch) Contains(garmentID string) bool {
	for _, id := range b.GarmentIDs {
		if id == garmentID {
			return true
		}
	}
	return false
}

// Progress is min(100, round(100 * actual / expected)).
func (b Batch) Progress() int {
	return BatchProgressPercent(b.ActualCount(), b.ExpectedGarments)
}

func (b Batch) IsComplete() bool {
	return b.ExpectedGarments > 0 && b.ActualCount() >= b.ExpectedGarments
}

// BatchProgressPercent is kept separate from Batch so it can be checked
// against arbitrary counts.
func BatchProgressPercent(actual, expected int) int {
	if expected < 1 || actual <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(actual) / float64(expected)))
	if p > 100 {
		return 100
	}
	return p
}
