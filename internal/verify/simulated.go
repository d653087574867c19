package verify

import (
	"context"
	"time"
)

const defaultVerifyDelay = 2500 * time.Millisecond

// SimulatedVerifier stands in for a payment-gateway lookup. It waits a
// fixed delay and reports success, so checkout behaves like production
// without a real provider.
type SimulatedVerifier struct {
	delay time.Duration
}

type SimulatedOption func(*SimulatedVerifier)

// WithDelay overrides the simulated verification delay.
func WithDelay(d time.Duration) SimulatedOption {
	return func(v *SimulatedVerifier) {
		if d >= 0 {
			v.delay = d
		}
	}
}

func NewSimulated(opts ...SimulatedOption) *SimulatedVerifier {
	v := &SimulatedVerifier{delay: defaultVerifyDelay}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *SimulatedVerifier) Verify(ctx context.Context, _ string) error {
	if v.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(v.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
