package handlers

import (
	"errors"
	"net/http"

	"lavanderia_rfid/internal/domain/errs"
	"lavanderia_rfid/internal/usecase"
	"lavanderia_rfid/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapError turns use case errors into API errors. Specific errors get their
// own code; anything else falls back to its family.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGarmentNotFound):
		return pkg.NewDomainError("GARMENT_NOT_FOUND", "Garment not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainError("BATCH_NOT_FOUND", "Batch not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainError("CLIENT_NOT_FOUND", "Client not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRFIDAlreadyRegistered):
		return pkg.NewDomainError("RFID_ALREADY_REGISTERED", "RFID code already registered", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchIncomplete):
		return pkg.NewDomainError("BATCH_INCOMPLETE", "Batch is not complete", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchAlreadyCompleted):
		return pkg.NewDomainError("BATCH_ALREADY_COMPLETED", "Batch was already completed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnresolvedDrafts):
		return pkg.NewDomainError("UNRESOLVED_DRAFTS", "Some garments still need metadata", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainError("INVALID_STEP", "Operation not allowed in the current step", err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrNotConnected):
		return pkg.NewDomainError("READER_NOT_CONNECTED", "RFID reader not connected", err, http.StatusServiceUnavailable)
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, errs.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Request conflicts with current state", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
