package services

import (
	"context"
	"time"
)

// pause simulates the latency of a remote backend. It is a cooperative
// suspension point only: no other actor can mutate the store while the
// caller waits. Honors context cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
