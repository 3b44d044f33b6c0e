package usecase

import (
	"context"
	"fmt"

	"lavanderia_rfid/internal/domain/entities"
)

// OperatorAction names a command an operator can issue from the dashboard.
type OperatorAction string

const (
	ActionMarkInProcess OperatorAction = "mark_in_process"
	ActionMarkReady     OperatorAction = "mark_ready"
	ActionMarkDelivered OperatorAction = "mark_delivered"
	ActionSetStatus     OperatorAction = "set_status"
	ActionBoardMove     OperatorAction = "board_move"
	ActionAddNote       OperatorAction = "add_note"
	ActionAddToBatch    OperatorAction = "add_to_batch"
	ActionCompleteBatch OperatorAction = "complete_batch"
	ActionDeleteBatch   OperatorAction = "delete_batch"
)

// ActionRequest carries the arguments of every action; each handler reads
// only the fields it needs.
type ActionRequest struct {
	Action     OperatorAction         `json:"action"`
	GarmentIDs []string               `json:"garment_ids,omitempty"`
	BatchID    string                 `json:"batch_id,omitempty"`
	Status     entities.GarmentStatus `json:"status,omitempty"`
	Note       string                 `json:"note,omitempty"`
	Operator   string                 `json:"operator,omitempty"`
}

type ActionResult struct {
	Action   OperatorAction        `json:"action"`
	Garments []entities.Garment    `json:"garments,omitempty"`
	Batch    *entities.Batch       `json:"batch,omitempty"`
	Report   *BulkTransitionReport `json:"report,omitempty"`
}

type IActionDispatcher interface {
	Dispatch(ctx context.Context, req ActionRequest) (ActionResult, error)
	Actions() []OperatorAction
}

type actionHandler func(ctx context.Context, req ActionRequest) (ActionResult, error)

type ActionDispatcher struct {
	lifecycle ILifecycleUseCase
	batches   IBatchUseCase
	table     map[OperatorAction]actionHandler
}

var _ IActionDispatcher = (*ActionDispatcher)(nil)

func NewActionDispatcher(lifecycle ILifecycleUseCase, batches IBatchUseCase) *ActionDispatcher {
	d := &ActionDispatcher{lifecycle: lifecycle, batches: batches}
	d.table = map[OperatorAction]actionHandler{
		ActionMarkInProcess: d.statusShortcut(entities.GarmentStatusInProcess),
		ActionMarkReady:     d.statusShortcut(entities.GarmentStatusReady),
		ActionMarkDelivered: d.statusShortcut(entities.GarmentStatusDelivered),
		ActionSetStatus:     d.setStatus,
		ActionBoardMove:     d.boardMove,
		ActionAddNote:       d.addNote,
		ActionAddToBatch:    d.addToBatch,
		ActionCompleteBatch: d.completeBatch,
		ActionDeleteBatch:   d.deleteBatch,
	}
	return d
}

func (d *ActionDispatcher) Dispatch(ctx context.Context, req ActionRequest) (ActionResult, error) {
	h, ok := d.table[req.Action]
	if !ok {
		return ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
	return h(ctx, req)
}

// Actions lists the registered actions in declaration order.
func (d *ActionDispatcher) Actions() []OperatorAction {
	all := []OperatorAction{
		ActionMarkInProcess, ActionMarkReady, ActionMarkDelivered,
		ActionSetStatus, ActionBoardMove, ActionAddNote,
		ActionAddToBatch, ActionCompleteBatch, ActionDeleteBatch,
	}
	out := make([]OperatorAction, 0, len(all))
	for _, a := range all {
		if _, ok := d.table[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (d *ActionDispatcher) statusShortcut(status entities.GarmentStatus) actionHandler {
	return func(ctx context.Context, req ActionRequest) (ActionResult, error) {
		req.Status = status
		return d.setStatus(ctx, req)
	}
}

// setStatus uses the single transition for one id and the bulk path otherwise.
func (d *ActionDispatcher) setStatus(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if len(req.GarmentIDs) == 0 {
		return ActionResult{}, ErrInvalidGarmentID
	}
	if len(req.GarmentIDs) == 1 {
		g, err := d.lifecycle.Transition(ctx, req.GarmentIDs[0], req.Status, req.Note, req.Operator)
		if err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Action: req.Action, Garments: []entities.Garment{g}}, nil
	}
	report, err := d.lifecycle.BulkTransition(ctx, req.GarmentIDs, req.Status, req.Note, req.Operator)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Action: req.Action, Report: &report}, nil
}

func (d *ActionDispatcher) boardMove(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if len(req.GarmentIDs) != 1 {
		return ActionResult{}, ErrInvalidGarmentID
	}
	g, err := d.lifecycle.MoveOnBoard(ctx, req.GarmentIDs[0], req.Status, req.Operator)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Action: req.Action, Garments: []entities.Garment{g}}, nil
}

func (d *ActionDispatcher) addNote(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if len(req.GarmentIDs) != 1 {
		return ActionResult{}, ErrInvalidGarmentID
	}
	g, err := d.lifecycle.AppendNote(ctx, req.GarmentIDs[0], req.Note, req.Operator)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Action: req.Action, Garments: []entities.Garment{g}}, nil
}

func (d *ActionDispatcher) addToBatch(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if len(req.GarmentIDs) == 0 {
		return ActionResult{}, ErrInvalidGarmentID
	}
	var b entities.Batch
	for _, id := range req.GarmentIDs {
		var err error
		b, err = d.batches.AddGarment(ctx, req.BatchID, id, req.Operator)
		if err != nil {
			return ActionResult{}, err
		}
	}
	return ActionResult{Action: req.Action, Batch: &b}, nil
}

func (d *ActionDispatcher) completeBatch(ctx context.Context, req ActionRequest) (ActionResult, error) {
	b, err := d.batches.CompleteBatch(ctx, req.BatchID, req.Operator)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Action: req.Action, Batch: &b}, nil
}

func (d *ActionDispatcher) deleteBatch(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if err := d.batches.DeleteBatch(ctx, req.BatchID, req.Operator); err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Action: req.Action}, nil
}
