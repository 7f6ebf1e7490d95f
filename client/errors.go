package client

import (
	clienterrors "github.com/as3d12/instaboard/client/internal/errors"
)

// ErrNetwork is matched by every fetch failure (transport, non-2xx, malformed body).
var ErrNetwork = clienterrors.ErrNetwork

// NetworkError is the concrete fetch failure type.
type NetworkError = clienterrors.NetworkError

// IsNetworkError reports whether err is a fetch failure.
func IsNetworkError(err error) bool { return clienterrors.IsNetwork(err) }

// newPacingError reports a fetch abandoned while waiting on the rate limiter.
func newPacingError(err error) error {
	return clienterrors.NewTransportError("fetch users: rate limit wait", err)
}
