package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lavanderia_rfid/internal/domain/errs"
	"lavanderia_rfid/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrGarmentNotFound, http.StatusNotFound, "GARMENT_NOT_FOUND"},
		{fmt.Errorf("%w: 9", usecase.ErrBatchNotFound), http.StatusNotFound, "BATCH_NOT_FOUND"},
		{usecase.ErrRFIDAlreadyRegistered, http.StatusConflict, "RFID_ALREADY_REGISTERED"},
		{fmt.Errorf("%w: batch #3 is listo", usecase.ErrBatchAlreadyCompleted), http.StatusConflict, "BATCH_ALREADY_COMPLETED"},
		{usecase.ErrGarmentInOtherBatch, http.StatusConflict, "CONFLICT"},
		{usecase.ErrUnresolvedDrafts, http.StatusBadRequest, "UNRESOLVED_DRAFTS"},
		{usecase.ErrInvalidStatus, http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("scan: %w", errs.ErrNotConnected), http.StatusServiceUnavailable, "READER_NOT_CONNECTED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("mapError(%v) = %d %s, want %d %s", tt.err, got.HTTPStatus, got.Code, tt.status, tt.code)
			}
		})
	}

	if details := mapError(errors.New("db password leaked")).ToHTTPError().Details; details != "" {
		t.Fatalf("expected internal details hidden, got %q", details)
	}
}
