package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no details", func(t *testing.T) {
		e := NewDomainErrorSimple("GARMENT_NOT_FOUND", "Garment not found", http.StatusNotFound)
		body := e.ToHTTPError()
		if body.Code != "GARMENT_NOT_FOUND" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "Garment not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
	})

	t.Run("client errors expose details", func(t *testing.T) {
		cause := errors.New("type and color are required")
		e := NewDomainError("VALIDATION_ERROR", "Invalid request", cause, http.StatusBadRequest)
		if e.ToHTTPError().Details != cause.Error() {
			t.Fatalf("expected details, got %+v", e.ToHTTPError())
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("server errors hide details", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("dial tcp"), http.StatusInternalServerError)
		if e.ToHTTPError().Details != "" {
			t.Fatalf("expected hidden details, got %+v", e.ToHTTPError())
		}
	})
}
