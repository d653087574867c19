package verify

import "context"

// Verifier checks a user-supplied payment reference against the payment
// provider. Implementations must honor context cancellation.
type Verifier interface {
	Verify(ctx context.Context, paymentReference string) error
}
