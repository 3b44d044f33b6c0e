package response

import (
	"time"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase"
)

type DraftResponse struct {
	Index      int                         `json:"index"`
	TagID      string                      `json:"tag_id"`
	ScannedAt  time.Time                   `json:"scanned_at"`
	Resolved   bool                        `json:"resolved"`
	Grouped    bool                        `json:"grouped"`
	Attributes *entities.GarmentAttributes `json:"attributes,omitempty"`
}

type IntakeResponse struct {
	SessionID        string          `json:"session_id"`
	Step             int             `json:"step"`
	SelectedClientID string          `json:"selected_client_id,omitempty"`
	Drafts           []DraftResponse `json:"drafts"`
	Unresolved       int             `json:"unresolved"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromIntakeSnapshot(sessionID string, s entities.IntakeSnapshot) IntakeResponse {
	out := IntakeResponse{
		SessionID:        sessionID,
		Step:             int(s.CurrentStep),
		SelectedClientID: s.SelectedClientID,
		Drafts:           make([]DraftResponse, 0, len(s.ScannedGarments)),
		Unresolved:       s.UnresolvedCount(),
		UpdatedAt:        s.UpdatedAt,
	}
	for i, d := range s.ScannedGarments {
		item := DraftResponse{Index: i, TagID: d.TagID(), Resolved: d.Resolved()}
		switch v := d.(type) {
		case entities.UnresolvedDraft:
			item.ScannedAt = v.ScannedAt
		case entities.ResolvedDraft:
			attrs := v.Attributes
			item.ScannedAt = v.ScannedAt
			item.Grouped = v.Grouped
			item.Attributes = &attrs
		}
		out.Drafts = append(out.Drafts, item)
	}
	return out
}

// CaptureResponse is the intake state after a scan, with how many tags were new.
type CaptureResponse struct {
	IntakeResponse
	Added   int  `json:"added"`
	Partial bool `json:"partial,omitempty"`
}

type IntakeAdvanceResponse struct {
	IntakeResponse
	Receipt *ReceiptResponse `json:"receipt,omitempty"`
}

type ReceiptResponse struct {
	ClientID string            `json:"client_id"`
	Garments []GarmentResponse `json:"garments"`
	Batch    *BatchResponse    `json:"batch,omitempty"`
}

func FromReceipt(r *usecase.IntakeReceipt) *ReceiptResponse {
	if r == nil {
		return nil
	}
	out := &ReceiptResponse{ClientID: r.ClientID, Garments: FromGarments(r.Garments)}
	if r.Batch != nil {
		b := FromBatch(*r.Batch)
		out.Batch = &b
	}
	return out
}
