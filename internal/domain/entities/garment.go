package entities

import (
	"strings"
	"time"
)

// GarmentStatus is the lifecycle stage of a single garment.
//
// Normal operator path: received -> in_process -> ready -> delivered.
// Edit and bulk actions may move a garment to any status (operator override).
type GarmentStatus string

const (
	GarmentStatusReceived  GarmentStatus = "received"
	GarmentStatusInProcess GarmentStatus = "in_process"
	GarmentStatusReady     GarmentStatus = "ready"
	GarmentStatusDelivered GarmentStatus = "delivered"
)

// GarmentStatuses lists the lifecycle in stage order.
var GarmentStatuses = []GarmentStatus{
	GarmentStatusReceived,
	GarmentStatusInProcess,
	GarmentStatusReady,
	GarmentStatusDelivered,
}

func (s GarmentStatus) Valid() bool {
	return s.Stage() >= 0
}

// Stage returns the position of s in the lifecycle, or -1 when unknown.
func (s GarmentStatus) Stage() int {
	for i, st := range GarmentStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

type GarmentCondition string

const (
	ConditionGood     GarmentCondition = "good"
	ConditionRegular  GarmentCondition = "regular"
	ConditionDelicate GarmentCondition = "delicate"
	ConditionStained  GarmentCondition = "stained"
	ConditionTorn     GarmentCondition = "torn"
)

func (c GarmentCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionRegular, ConditionDelicate, ConditionStained, ConditionTorn:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceTypeNormal   ServiceType = "normal"
	ServiceTypeDelicate ServiceType = "delicate"
	ServiceTypeUrgent   ServiceType = "urgent"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeNormal, ServiceTypeDelicate, ServiceTypeUrgent:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// UnspecifiedAttribute marks type/color of a garment captured by tag only.
const UnspecifiedAttribute = "unspecified"

// GarmentAttributes is the descriptive part of a garment, confirmed by the
// operator during intake.
type GarmentAttributes struct {
	Type             string           `json:"type"`
	Color            string           `json:"color"`
	Size             string           `json:"size,omitempty"`
	Condition        GarmentCondition `json:"condition"`
	ServiceType      ServiceType      `json:"service_type"`
	Priority         Priority         `json:"priority"`
	Temperature      string           `json:"temperature,omitempty"`
	SpecialTreatment string           `json:"special_treatment,omitempty"`
	Observations     string           `json:"observations,omitempty"`
}

// DefaultGarmentAttributes is what a freshly scanned tag carries before the
// operator confirms its metadata.
func DefaultGarmentAttributes() GarmentAttributes {
	return GarmentAttributes{
		Type:        UnspecifiedAttribute,
		Color:       UnspecifiedAttribute,
		Condition:   ConditionGood,
		ServiceType: ServiceTypeNormal,
		Priority:    PriorityNormal,
	}
}

// Normalize trims free text and fills enum defaults.
func (a GarmentAttributes) Normalize() GarmentAttributes {
	a.Type = strings.TrimSpace(a.Type)
	a.Color = strings.TrimSpace(a.Color)
	a.Size = strings.TrimSpace(a.Size)
	a.Temperature = strings.TrimSpace(a.Temperature)
	a.SpecialTreatment = strings.TrimSpace(a.SpecialTreatment)
	a.Observations = strings.TrimSpace(a.Observations)
	if a.Condition == "" {
		a.Condition = ConditionGood
	}
	if a.ServiceType == "" {
		a.ServiceType = ServiceTypeNormal
	}
	if a.Priority == "" {
		a.Priority = PriorityNormal
	}
	return a
}

// Garment is a single tagged item owned by a client.
//
// Timestamps:
//   - ReceivedAt is set at creation.
//   - ProcessedAt, ReadyAt, DeliveredAt are set once, the first time the
//     garment enters the matching status, and never overwritten afterwards.
type Garment struct {
	ID       string `json:"id"`
	RFIDCode string `json:"rfid_code"`
	GarmentAttributes

	ClientID string `json:"client_id"`
	BatchID  string `json:"batch_id,omitempty"`

	Status      GarmentStatus `json:"status"`
	ReceivedAt  time.Time     `json:"received_at"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
	ReadyAt     *time.Time    `json:"ready_at,omitempty"`
	DeliveredAt *time.Time    `json:"delivered_at,omitempty"`
	LastUpdated time.Time     `json:"last_updated"`

	Notes string `json:"notes,omitempty"`
}

// StageTimestamp returns the timestamp recorded for status, or nil.
func (g Garment) StageTimestamp(status GarmentStatus) *time.Time {
	switch status {
	case GarmentStatusReceived:
		t := g.ReceivedAt
		return &t
	case GarmentStatusInProcess:
		return g.ProcessedAt
	case GarmentStatusReady:
		return g.ReadyAt
	case GarmentStatusDelivered:
		return g.DeliveredAt
	}
	return nil
}

// StampStage records at for every stage up to and including status that has
// no timestamp yet. Stamping skipped stages keeps "a later timestamp implies
// the earlier ones" true when an operator override jumps ahead.
func (g *Garment) StampStage(status GarmentStatus, at time.Time) {
	target := status.Stage()
	for _, st := range GarmentStatuses[1:] {
		if st.Stage() > target {
			break
		}
		switch st {
		case GarmentStatusInProcess:
			if g.ProcessedAt == nil {
				g.ProcessedAt = timePtr(at)
			}
		case GarmentStatusReady:
			if g.ReadyAt == nil {
				g.ReadyAt = timePtr(at)
			}
		case GarmentStatusDelivered:
			if g.DeliveredAt == nil {
				g.DeliveredAt = timePtr(at)
			}
		}
	}
}

// AppendNote adds one timestamped line; previous notes are kept verbatim.
func (g *Garment) AppendNote(at time.Time, text string) {
	line := "[" + at.UTC().Format("2006-01-02 15:04") + "] " + text
	if g.Notes == "" {
		g.Notes = line
		return
	}
	g.Notes = g.Notes + "\n" + line
}

// DaysInSystem is the elapsed time since intake, in fractional days.
func (g Garment) DaysInSystem(now time.Time) float64 {
	return now.Sub(g.ReceivedAt).Hours() / 24
}

func timePtr(t time.Time) *time.Time {
	return &t
}
