package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// IntakeStep is the position of the intake wizard.
type IntakeStep int

const (
	IntakeStepClientSelection IntakeStep = 1
	IntakeStepGarmentCapture  IntakeStep = 2
	IntakeStepConfirmation    IntakeStep = 3
)

func (s IntakeStep) Valid() bool {
	return s >= IntakeStepClientSelection && s <= IntakeStepConfirmation
}

// Draft is a garment captured during intake but not yet committed. It is
// either an UnresolvedDraft (identified by tag only) or a ResolvedDraft
// (metadata confirmed by the operator).
type Draft interface {
	TagID() string
	Resolved() bool
	isDraft()
}

// UnresolvedDraft is a scanned tag whose metadata has not been confirmed.
type UnresolvedDraft struct {
	Tag       string
	ScannedAt time.Time
}

func (d UnresolvedDraft) TagID() string  { return d.Tag }
func (d UnresolvedDraft) Resolved() bool { return false }
func (UnresolvedDraft) isDraft()         {}

// ResolvedDraft carries everything needed to create the garment.
// Grouped is true when the metadata came from one shared batch attribute set.
type ResolvedDraft struct {
	Tag        string
	ScannedAt  time.Time
	Attributes GarmentAttributes
	Grouped    bool
}

func (d ResolvedDraft) TagID() string  { return d.Tag }
func (d ResolvedDraft) Resolved() bool { return true }
func (ResolvedDraft) isDraft()         {}

// IntakeSnapshot is the recoverable state of an intake session.
type IntakeSnapshot struct {
	SelectedClientID string
	ScannedGarments  []Draft
	CurrentStep      IntakeStep
	UpdatedAt        time.Time
}

// UnresolvedCount returns how many drafts still need metadata.
func (s IntakeSnapshot) UnresolvedCount() int {
	n := 0
	for _, d := range s.ScannedGarments {
		if !d.Resolved() {
			n++
		}
	}
	return n
}

func (s IntakeSnapshot) HasTag(tagID string) bool {
	for _, d := range s.ScannedGarments {
		if d.TagID() == tagID {
			return true
		}
	}
	return false
}

// draftRecord is the wire form of a Draft. IsBatchItem is true for drafts
// identified by tag whose metadata is not yet confirmed.
type draftRecord struct {
	TagID       string             `json:"tag_id"`
	ScannedAt   time.Time          `json:"scanned_at"`
	IsBatchItem bool               `json:"is_batch_item"`
	Grouped     bool               `json:"grouped,omitempty"`
	Attributes  *GarmentAttributes `json:"attributes,omitempty"`
}

type snapshotRecord struct {
	SelectedClientID string        `json:"selected_client_id"`
	ScannedGarments  []draftRecord `json:"scanned_garments"`
	CurrentStep      IntakeStep    `json:"current_step"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (s IntakeSnapshot) MarshalJSON() ([]byte, error) {
	rec := snapshotRecord{
		SelectedClientID: s.SelectedClientID,
		ScannedGarments:  make([]draftRecord, 0, len(s.ScannedGarments)),
		CurrentStep:      s.CurrentStep,
		UpdatedAt:        s.UpdatedAt,
	}
	for _, d := range s.ScannedGarments {
		switch v := d.(type) {
		case UnresolvedDraft:
			attrs := DefaultGarmentAttributes()
			rec.ScannedGarments = append(rec.ScannedGarments, draftRecord{
				TagID:       v.Tag,
				ScannedAt:   v.ScannedAt,
				IsBatchItem: true,
				Attributes:  &attrs,
			})
		case ResolvedDraft:
			attrs := v.Attributes
			rec.ScannedGarments = append(rec.ScannedGarments, draftRecord{
				TagID:      v.Tag,
				ScannedAt:  v.ScannedAt,
				Grouped:    v.Grouped,
				Attributes: &attrs,
			})
		default:
			return nil, fmt.Errorf("unknown draft type %T", d)
		}
	}
	return json.Marshal(rec)
}

func (s *IntakeSnapshot) UnmarshalJSON(data []byte) error {
	var rec snapshotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	out := IntakeSnapshot{
		SelectedClientID: rec.SelectedClientID,
		CurrentStep:      rec.CurrentStep,
		UpdatedAt:        rec.UpdatedAt,
	}
	if !out.CurrentStep.Valid() {
		out.CurrentStep = IntakeStepClientSelection
	}
	for _, r := range rec.ScannedGarments {
		if r.IsBatchItem || r.Attributes == nil {
			out.ScannedGarments = append(out.ScannedGarments, UnresolvedDraft{Tag: r.TagID, ScannedAt: r.ScannedAt})
			continue
		}
		out.ScannedGarments = append(out.ScannedGarments, ResolvedDraft{
			Tag:        r.TagID,
			ScannedAt:  r.ScannedAt,
			Attributes: *r.Attributes,
			Grouped:    r.Grouped,
		})
	}
	*s = out
	return nil
}
