// Package errors provides the single failure kind surfaced by the fetcher.
// Transport, status and decode failures all satisfy errors.Is(err, ErrNetwork);
// the Kind is kept for logs and never drives behaviour.
package errors

import (
	"errors"
	"fmt"
)

// ErrNetwork is the sentinel every fetch failure matches.
var ErrNetwork = errors.New("fetch failed")

// Kind records where a fetch failed.
type Kind int

const (
	// Transport covers dial, TLS, timeout and cancellation failures.
	Transport Kind = iota

	// Status covers any non-2xx HTTP response.
	Status

	// Decode covers bodies that are not the expected JSON shape.
	Decode
)

// String returns a human-readable representation of the failure kind.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Status:
		return "status"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// NetworkError wraps a fetch failure with diagnostic metadata.
type NetworkError struct {
	Kind       Kind
	StatusCode int // HTTP status code (0 unless Kind == Status)
	Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s [%s] HTTP %d: %v", ErrNetwork, e.Kind, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s [%s]: %v", ErrNetwork, e.Kind, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *NetworkError) Unwrap() error { return e.Underlying }

// Is lets errors.Is(err, ErrNetwork) match any NetworkError.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// NewTransportError creates a NetworkError for a request that never produced a response.
func NewTransportError(op string, err error) *NetworkError {
	return &NetworkError{Kind: Transport, Underlying: fmt.Errorf("%s: %w", op, err)}
}

// NewStatusError creates a NetworkError for a non-2xx response.
func NewStatusError(op string, statusCode int) *NetworkError {
	return &NetworkError{
		Kind:       Status,
		StatusCode: statusCode,
		Underlying: fmt.Errorf("%s: unexpected status", op),
	}
}

// NewDecodeError creates a NetworkError for a malformed response body.
func NewDecodeError(op string, err error) *NetworkError {
	return &NetworkError{Kind: Decode, Underlying: fmt.Errorf("%s: %w", op, err)}
}

// IsNetwork reports whether err is (or wraps) a fetch failure.
func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }
