package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", e.HTTPStatus)
		}
	})

	t.Run("cause is unwrapped but not rendered", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected default 500, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Details != nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("details", func(t *testing.T) {
		body := NewDomainErrorSimple("INVALID_OPTIONS", "bad", http.StatusBadRequest).
			WithDetail("keys", []string{"bogus"}).
			ToHTTPError()
		if _, ok := body.Details["keys"]; !ok {
			t.Fatalf("expected keys detail, got %+v", body.Details)
		}
	})
}
