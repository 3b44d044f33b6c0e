package usecase

import (
	"context"
	"strings"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const systemOperator = "system"

// historyRecorder stamps and appends audit entries for every use case.
type historyRecorder struct {
	repo  interfaces.IHistoryRepository
	clock interfaces.IClock
}

func (h historyRecorder) record(ctx context.Context, e entities.HistoryEntry) error {
	e.ID = uuid.NewString()
	e.Operator = normalizeOperator(e.Operator)
	if e.Timestamp.IsZero() {
		e.Timestamp = h.clock.Now()
	}
	if e.GarmentIDs == nil {
		e.GarmentIDs = []string{}
	}
	_, err := h.repo.Append(ctx, e)
	return err
}

func normalizeOperator(op string) string {
	op = strings.TrimSpace(op)
	if op == "" {
		return systemOperator
	}
	return op
}
