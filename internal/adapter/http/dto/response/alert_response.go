package response

import (
	"time"

	"lavanderia_rfid/internal/usecase"
)

type DelayedGarmentResponse struct {
	GarmentResponse
	DaysInSystem float64 `json:"days_in_system"`
	Progress     int     `json:"progress"`
}

type DelayReportResponse struct {
	ThresholdDays   float64                  `json:"threshold_days"`
	GeneratedAt     time.Time                `json:"generated_at"`
	Count           int                      `json:"count"`
	DelayedGarments []DelayedGarmentResponse `json:"delayed_garments"`
	DelayedBatches  []BatchResponse          `json:"delayed_batches"`
	Summary         map[string]int           `json:"summary"`
}

func FromDelayReport(r usecase.DelayReport) DelayReportResponse {
	out := DelayReportResponse{
		ThresholdDays:   r.ThresholdDays,
		GeneratedAt:     r.GeneratedAt,
		Count:           len(r.DelayedGarments),
		DelayedGarments: make([]DelayedGarmentResponse, 0, len(r.DelayedGarments)),
		DelayedBatches:  FromBatches(r.DelayedBatches),
		Summary:         r.Summary,
	}
	for _, g := range r.DelayedGarments {
		out.DelayedGarments = append(out.DelayedGarments, DelayedGarmentResponse{
			GarmentResponse: FromGarment(g.Garment),
			DaysInSystem:    g.DaysInSystem,
			Progress:        g.Progress,
		})
	}
	if out.Summary == nil {
		out.Summary = map[string]int{}
	}
	return out
}
