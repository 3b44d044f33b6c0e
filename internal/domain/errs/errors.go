// Package errs holds the error families shared by every layer.
//
// Use cases declare specific errors that wrap one of these, so callers can
// match either the specific error or its family with errors.Is.
package errs

import "errors"

var (
	// ErrValidation: missing or invalid input. No side effect; re-prompt.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: unknown client, garment or batch id. No side effect.
	ErrNotFound = errors.New("not found")
	// ErrConflict: the request contradicts current state. No partial mutation.
	ErrConflict = errors.New("conflict")
	// ErrNotConnected: the RFID reader is not connected.
	ErrNotConnected = errors.New("reader not connected")
)
