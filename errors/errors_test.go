package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeNotFound, "service not found")
	want := "NOT_FOUND: service not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	withCause := err.WithCause(fmt.Errorf("boom"))
	if withCause.Error() != "NOT_FOUND: service not found (cause: boom)" {
		t.Errorf("Error() with cause = %q", withCause.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := TransportFailure("register", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport failure", TransportFailure("discover", nil), true},
		{"component unavailable", ComponentUnavailable("registry-client"), false},
		{"not found", NotFound("service", "x-1"), false},
		{"plain error", errors.New("plain"), false},
		{"wrapped transport", fmt.Errorf("outer: %w", TransportFailure("register", nil)), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(ComponentUnavailable("registry-client")); got != ErrCodeComponentUnavailable {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeComponentUnavailable)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %q, want %q", got, ErrCodeInternal)
	}
}

func TestConstructors_Details(t *testing.T) {
	err := TransportFailure("register", nil)
	if err.Details["operation"] != "register" {
		t.Errorf("operation detail = %v, want register", err.Details["operation"])
	}

	err = NotFound("service", "order-service-0")
	if err.Details["id"] != "order-service-0" {
		t.Errorf("id detail = %v", err.Details["id"])
	}
}
