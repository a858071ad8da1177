package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// mapTransportError wraps a resty transport error with a sentinel.
// Context cancellation by the caller is passed through unchanged.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
