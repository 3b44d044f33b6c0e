package request

import (
	"time"

	"lavanderia_rfid/internal/domain/entities"
)

type SelectClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type TagRequest struct {
	TagID          string    `json:"tag_id" binding:"required"`
	SignalStrength int       `json:"signal_strength"`
	Antenna        int       `json:"antenna"`
	Timestamp      time.Time `json:"timestamp"`
}

// IntakeScanRequest feeds tags into the capture step. When Tags is empty the
// connected reader is used with the given Mode (single or batch).
type IntakeScanRequest struct {
	Mode string       `json:"mode"`
	Tags []TagRequest `json:"tags"`
}

func (r IntakeScanRequest) Observations() []entities.TagObservation {
	out := make([]entities.TagObservation, 0, len(r.Tags))
	for _, t := range r.Tags {
		out = append(out, entities.TagObservation{
			TagID:          t.TagID,
			SignalStrength: t.SignalStrength,
			Antenna:        t.Antenna,
			Timestamp:      t.Timestamp,
		})
	}
	return out
}

// GarmentAttributesRequest is the metadata form, shared by the batch
// metadata modal and the per-tag edit.
type GarmentAttributesRequest struct {
	Type             string `json:"type"`
	Color            string `json:"color"`
	Size             string `json:"size"`
	Condition        string `json:"condition"`
	ServiceType      string `json:"service_type"`
	Priority         string `json:"priority"`
	Temperature      string `json:"temperature"`
	SpecialTreatment string `json:"special_treatment"`
	Observations     string `json:"observations"`
}

func (r GarmentAttributesRequest) ToAttributes() entities.GarmentAttributes {
	return entities.GarmentAttributes{
		Type:             r.Type,
		Color:            r.Color,
		Size:             r.Size,
		Condition:        entities.GarmentCondition(r.Condition),
		ServiceType:      entities.ServiceType(r.ServiceType),
		Priority:         entities.Priority(r.Priority),
		Temperature:      r.Temperature,
		SpecialTreatment: r.SpecialTreatment,
		Observations:     r.Observations,
	}
}
