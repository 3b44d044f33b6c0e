package response

import (
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase"
)

type ReaderStatusResponse struct {
	Connected bool `json:"connected"`
}

type ScanResponse struct {
	Mode    string                    `json:"mode"`
	Count   int                       `json:"count"`
	Tags    []entities.TagObservation `json:"tags"`
	Partial bool                      `json:"partial"`
}

func FromScanResult(r usecase.ScanResult) ScanResponse {
	tags := r.Tags
	if tags == nil {
		tags = []entities.TagObservation{}
	}
	return ScanResponse{Mode: string(r.Mode), Count: len(tags), Tags: tags, Partial: r.Partial}
}

// StreamMessage is one websocket frame of a live batch scan.
type StreamMessage struct {
	Type    string                    `json:"type"` // round | done | error
	Tags    []entities.TagObservation `json:"tags,omitempty"`
	Total   int                       `json:"total"`
	Partial bool                      `json:"partial,omitempty"`
	Error   string                    `json:"error,omitempty"`
}
