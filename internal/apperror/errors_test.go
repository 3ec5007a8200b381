package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestWithFields_DoesNotMutateOriginal(t *testing.T) {
	base := NewUnauthorized("Incorrect username or password.")
	flagged := base.WithFields("username", "password")

	if len(base.Fields) != 0 {
		t.Errorf("original error gained fields: %v", base.Fields)
	}
	if len(flagged.Fields) != 2 || flagged.Fields[0] != "username" || flagged.Fields[1] != "password" {
		t.Errorf("unexpected fields: %v", flagged.Fields)
	}
	if flagged.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", flagged.Code)
	}
}

func TestNewStatus_Types(t *testing.T) {
	cases := map[int]string{
		http.StatusUnauthorized:        "unauthorized",
		http.StatusConflict:            "conflict",
		http.StatusUnprocessableEntity: "validation_error",
		http.StatusServiceUnavailable:  "internal_error",
		http.StatusTeapot:              "error",
	}
	for code, want := range cases {
		if got := NewStatus(code, "x").Type; got != want {
			t.Errorf("status %d: expected type %q, got %q", code, want, got)
		}
	}
}

func TestNewBadGateway_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewBadGateway(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", err.Code)
	}
}

func TestNewInternal_HidesCause(t *testing.T) {
	err := NewInternal(errors.New("table event_priorities doesn't exist"))
	if err.Message != "An unexpected error occurred. Please try again." {
		t.Errorf("internal message leaked: %q", err.Message)
	}
}
