package request

import "lavanderia_rfid/internal/usecase"

type ActionRequest struct {
	Action     string   `json:"action" binding:"required"`
	GarmentIDs []string `json:"garment_ids"`
	BatchID    string   `json:"batch_id"`
	Status     string   `json:"status"`
	Note       string   `json:"note"`
	Operator   string   `json:"operator"`
}

func (r ActionRequest) ToUseCase() usecase.ActionRequest {
	return usecase.ActionRequest{
		Action:     usecase.OperatorAction(r.Action),
		GarmentIDs: r.GarmentIDs,
		BatchID:    r.BatchID,
		Status:     GarmentStatus(r.Status),
		Note:       r.Note,
		Operator:   r.Operator,
	}
}
