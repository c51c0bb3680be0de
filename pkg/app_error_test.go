package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Success || body.Error.Code != "INTERNAL_ERROR" || body.Error.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	if simple.Error() != "ORDER_NOT_FOUND: Order not found" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}
