package response

import (
	"time"

	"lavanderia_rfid/internal/domain/entities"
)

type GarmentResponse struct {
	ID               string     `json:"id"`
	RFIDCode         string     `json:"rfid_code"`
	Type             string     `json:"type"`
	Color            string     `json:"color"`
	Size             string     `json:"size,omitempty"`
	Condition        string     `json:"condition"`
	ServiceType      string     `json:"service_type"`
	Priority         string     `json:"priority"`
	Temperature      string     `json:"temperature,omitempty"`
	SpecialTreatment string     `json:"special_treatment,omitempty"`
	Observations     string     `json:"observations,omitempty"`
	ClientID         string     `json:"client_id"`
	BatchID          string     `json:"batch_id,omitempty"`
	Status           string     `json:"status"`
	ReceivedAt       time.Time  `json:"received_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	ReadyAt          *time.Time `json:"ready_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	LastUpdated      time.Time  `json:"last_updated"`
	Notes            string     `json:"notes,omitempty"`
}

func FromGarment(g entities.Garment) GarmentResponse {
	return GarmentResponse{
		ID:               g.ID,
		RFIDCode:         g.RFIDCode,
		Type:             g.Type,
		Color:            g.Color,
		Size:             g.Size,
		Condition:        string(g.Condition),
		ServiceType:      string(g.ServiceType),
		Priority:         string(g.Priority),
		Temperature:      g.Temperature,
		SpecialTreatment: g.SpecialTreatment,
		Observations:     g.Observations,
		ClientID:         g.ClientID,
		BatchID:          g.BatchID,
		Status:           string(g.Status),
		ReceivedAt:       g.ReceivedAt,
		ProcessedAt:      g.ProcessedAt,
		ReadyAt:          g.ReadyAt,
		DeliveredAt:      g.DeliveredAt,
		LastUpdated:      g.LastUpdated,
		Notes:            g.Notes,
	}
}

func FromGarments(list []entities.Garment) []GarmentResponse {
	out := make([]GarmentResponse, 0, len(list))
	for _, g := range list {
		out = append(out, FromGarment(g))
	}
	return out
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	GarmentIDs []string  `json:"garment_ids"`
	BatchID    string    `json:"batch_id,omitempty"`
	Action     string    `json:"action"`
	Operator   string    `json:"operator"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:         e.ID,
			ClientID:   e.ClientID,
			GarmentIDs: e.GarmentIDs,
			BatchID:    e.BatchID,
			Action:     string(e.Action),
			Operator:   e.Operator,
			Details:    e.Details,
			Timestamp:  e.Timestamp,
		})
	}
	return out
}
