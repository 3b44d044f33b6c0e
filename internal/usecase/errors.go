package usecase

import (
	"fmt"

	"lavanderia_rfid/internal/domain/errs"
)

var (
	ErrInvalidGarmentID   = fmt.Errorf("invalid garment id: %w", errs.ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("invalid status: %w", errs.ErrValidation)
	ErrInvalidTransition  = fmt.Errorf("garment already has this status: %w", errs.ErrValidation)
	ErrEmptyNote          = fmt.Errorf("note text is empty: %w", errs.ErrValidation)
	ErrInvalidClientID    = fmt.Errorf("invalid client id: %w", errs.ErrValidation)
	ErrInvalidBatchID     = fmt.Errorf("invalid batch id: %w", errs.ErrValidation)
	ErrInvalidExpected    = fmt.Errorf("expected garments must be at least 1: %w", errs.ErrValidation)
	ErrMissingTypeOrColor = fmt.Errorf("type and color are required: %w", errs.ErrValidation)
	ErrInvalidAttributes  = fmt.Errorf("invalid garment attributes: %w", errs.ErrValidation)
	ErrInvalidStep        = fmt.Errorf("operation not allowed in the current intake step: %w", errs.ErrValidation)
	ErrNoDrafts           = fmt.Errorf("intake has no captured garments: %w", errs.ErrValidation)
	ErrUnresolvedDrafts   = fmt.Errorf("intake has garments without confirmed metadata: %w", errs.ErrValidation)
	ErrNoClientSelected   = fmt.Errorf("no client selected: %w", errs.ErrValidation)
	ErrInvalidDraftIndex  = fmt.Errorf("invalid draft index: %w", errs.ErrValidation)
	ErrInvalidSessionID   = fmt.Errorf("invalid intake session id: %w", errs.ErrValidation)
	ErrUnknownAction      = fmt.Errorf("unknown operator action: %w", errs.ErrValidation)
	ErrInvalidThreshold   = fmt.Errorf("threshold must be positive: %w", errs.ErrValidation)

	ErrClientNotFound  = fmt.Errorf("client %w", errs.ErrNotFound)
	ErrGarmentNotFound = fmt.Errorf("garment %w", errs.ErrNotFound)
	ErrBatchNotFound   = fmt.Errorf("batch %w", errs.ErrNotFound)

	ErrGarmentInOtherBatch   = fmt.Errorf("garment belongs to another batch: %w", errs.ErrConflict)
	ErrGarmentOtherClient    = fmt.Errorf("garment belongs to another client: %w", errs.ErrConflict)
	ErrBatchDelivered        = fmt.Errorf("batch already delivered: %w", errs.ErrConflict)
	ErrBatchHasUndelivered   = fmt.Errorf("batch has garments not yet delivered: %w", errs.ErrConflict)
	ErrBatchIncomplete       = fmt.Errorf("batch is not complete: %w", errs.ErrConflict)
	ErrBatchAlreadyCompleted = fmt.Errorf("batch already completed: %w", errs.ErrConflict)
	ErrRFIDAlreadyRegistered = fmt.Errorf("rfid code already registered: %w", errs.ErrConflict)
)
