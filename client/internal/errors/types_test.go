package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNetworkError_IsSentinel(t *testing.T) {
	cases := []error{
		NewTransportError("fetch users", context.DeadlineExceeded),
		NewStatusError("fetch users", 503),
		NewDecodeError("fetch users", fmt.Errorf("unexpected EOF")),
	}
	for _, err := range cases {
		if !errors.Is(err, ErrNetwork) {
			t.Fatalf("%v does not match ErrNetwork", err)
		}
		if !IsNetwork(fmt.Errorf("wrapped: %w", err)) {
			t.Fatalf("wrapped %v does not match ErrNetwork", err)
		}
	}
	if IsNetwork(errors.New("other")) {
		t.Fatal("unrelated error matched ErrNetwork")
	}
}

func TestNetworkError_UnwrapKeepsCause(t *testing.T) {
	err := NewTransportError("fetch users", context.Canceled)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestNetworkError_Message(t *testing.T) {
	err := NewStatusError("fetch users", 500)
	if !strings.Contains(err.Error(), "HTTP 500") || !strings.Contains(err.Error(), "[status]") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if got := Decode.String(); got != "decode" {
		t.Fatalf("Decode.String() = %q", got)
	}
	if got := Kind(9).String(); got != "unknown(9)" {
		t.Fatalf("Kind(9).String() = %q", got)
	}
}
