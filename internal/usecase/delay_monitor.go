package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/infrastructure/metrics"
	"lavanderia_rfid/internal/usecase/interfaces"
)

const (
	DefaultDelayThresholdDays = 7
	DefaultExpectedDays       = 3
)

// IDelayMonitor derives delay alerts from the current garment and batch state.
// It never writes.
type IDelayMonitor interface {
	IsDelayed(g entities.Garment, thresholdDays float64) bool
	ProcessProgress(g entities.Garment, expectedDays float64) int
	DelayedGarments(all []entities.Garment, thresholdDays float64) []entities.Garment
	DelayedBatches(batches []entities.Batch, garmentsByID map[string]entities.Garment, thresholdDays float64) []entities.Batch
	Alerts(ctx context.Context, clientID string, thresholdDays float64) (DelayReport, error)
}

type DelayedGarment struct {
	entities.Garment
	DaysInSystem float64 `json:"days_in_system"`
	Progress     int     `json:"progress"`
}

type DelayReport struct {
	ThresholdDays   float64          `json:"threshold_days"`
	GeneratedAt     time.Time        `json:"generated_at"`
	DelayedGarments []DelayedGarment `json:"delayed_garments"`
	DelayedBatches  []entities.Batch `json:"delayed_batches"`
	Summary         map[string]int   `json:"summary"`
}

type DelayMonitor struct {
	garments     interfaces.IGarmentRepository
	batches      interfaces.IBatchRepository
	clock        interfaces.IClock
	expectedDays float64
}

var _ IDelayMonitor = (*DelayMonitor)(nil)

// NewDelayMonitor builds a monitor. expectedDays feeds ProcessProgress in
// reports; a non-positive value falls back to DefaultExpectedDays.
func NewDelayMonitor(garments interfaces.IGarmentRepository, batches interfaces.IBatchRepository, clock interfaces.IClock, expectedDays float64) *DelayMonitor {
	if expectedDays <= 0 {
		expectedDays = DefaultExpectedDays
	}
	return &DelayMonitor{garments: garments, batches: batches, clock: clock, expectedDays: expectedDays}
}

func (m *DelayMonitor) IsDelayed(g entities.Garment, thresholdDays float64) bool {
	if g.Status == entities.GarmentStatusDelivered {
		return false
	}
	return g.DaysInSystem(m.clock.Now()) > thresholdDays
}

// ProcessProgress is a display estimate of how far along a garment should be,
// capped at 100.
func (m *DelayMonitor) ProcessProgress(g entities.Garment, expectedDays float64) int {
	if expectedDays <= 0 {
		return 100
	}
	elapsed := g.DaysInSystem(m.clock.Now())
	if elapsed <= 0 {
		return 0
	}
	pct := math.Round(elapsed / expectedDays * 100)
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// DelayedGarments keeps the delayed garments, oldest intake first. Ties on
// ReceivedAt are broken by ID so the order is reproducible.
func (m *DelayMonitor) DelayedGarments(all []entities.Garment, thresholdDays float64) []entities.Garment {
	out := make([]entities.Garment, 0)
	for _, g := range all {
		if m.IsDelayed(g, thresholdDays) {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ReceivedAt.Equal(out[j].ReceivedAt) {
			return out[i].ReceivedAt.Before(out[j].ReceivedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DelayedBatches returns the batches holding at least one delayed member,
// ordered by batch number.
func (m *DelayMonitor) DelayedBatches(batches []entities.Batch, garmentsByID map[string]entities.Garment, thresholdDays float64) []entities.Batch {
	out := make([]entities.Batch, 0)
	for _, b := range batches {
		for _, id := range b.GarmentIDs {
			g, ok := garmentsByID[id]
			if ok && m.IsDelayed(g, thresholdDays) {
				out = append(out, b)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BatchNumber < out[j].BatchNumber })
	return out
}

// Alerts evaluates the delay view for one client, or for everybody when
// clientID is empty.
func (m *DelayMonitor) Alerts(ctx context.Context, clientID string, thresholdDays float64) (DelayReport, error) {
	if thresholdDays <= 0 {
		return DelayReport{}, ErrInvalidThreshold
	}

	var (
		garments []entities.Garment
		batches  []entities.Batch
		err      error
	)
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		garments, err = m.garments.List(ctx)
		if err != nil {
			return DelayReport{}, err
		}
		batches, err = m.batches.List(ctx)
	} else {
		garments, err = m.garments.ListByClient(ctx, clientID)
		if err != nil {
			return DelayReport{}, err
		}
		batches, err = m.batches.ListByClient(ctx, clientID)
	}
	if err != nil {
		return DelayReport{}, err
	}

	now := m.clock.Now()
	byID := make(map[string]entities.Garment, len(garments))
	for _, g := range garments {
		byID[g.ID] = g
	}

	delayed := m.DelayedGarments(garments, thresholdDays)
	report := DelayReport{
		ThresholdDays:   thresholdDays,
		GeneratedAt:     now,
		DelayedGarments: make([]DelayedGarment, 0, len(delayed)),
		DelayedBatches:  m.DelayedBatches(batches, byID, thresholdDays),
		Summary:         make(map[string]int, len(entities.GarmentStatuses)),
	}
	for _, g := range delayed {
		report.DelayedGarments = append(report.DelayedGarments, DelayedGarment{
			Garment:      g,
			DaysInSystem: math.Round(g.DaysInSystem(now)*10) / 10,
			Progress:     m.ProcessProgress(g, m.expectedDays),
		})
		report.Summary[string(g.Status)]++
	}

	if clientID == "" {
		metrics.DelayedGarments.Set(float64(len(delayed)))
	}
	return report, nil
}
