package response

import "lavanderia_rfid/internal/usecase"

type ActionResponse struct {
	Action   string                        `json:"action"`
	Garments []GarmentResponse             `json:"garments,omitempty"`
	Batch    *BatchResponse                `json:"batch,omitempty"`
	Report   *usecase.BulkTransitionReport `json:"report,omitempty"`
}

func FromActionResult(r usecase.ActionResult) ActionResponse {
	out := ActionResponse{Action: string(r.Action), Report: r.Report}
	if len(r.Garments) > 0 {
		out.Garments = FromGarments(r.Garments)
	}
	if r.Batch != nil {
		b := FromBatch(*r.Batch)
		out.Batch = &b
	}
	return out
}
