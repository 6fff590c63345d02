package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorKindHTTPStatus(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuth, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInvalidTransition, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{"something-else", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewInternal("failed to save booking", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}

	var appErr *AppError
	wrapped := fmt.Errorf("handler: %w", err)
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected AppError through a wrapping layer")
	}
	if appErr.Kind != KindInternal {
		t.Errorf("expected internal kind, got %s", appErr.Kind)
	}
}

func TestAppErrorMessage(t *testing.T) {
	if got := NewNotFound("Booking not found").Error(); got != "Booking not found" {
		t.Errorf("unexpected message: %q", got)
	}
	withCause := NewInternal("failed", errors.New("boom"))
	if got := withCause.Error(); got != "failed: boom" {
		t.Errorf("unexpected message: %q", got)
	}
}
