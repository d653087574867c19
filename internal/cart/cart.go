package cart

import (
	"context"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// Store keeps per-session carts. Sessions are identified by an opaque ID
// supplied by the client; the cart lives outside the order ledger and is
// only cleared after a checkout fully succeeds.
type Store interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Add(ctx context.Context, sessionID string, item domain.CartItem) error
	Remove(ctx context.Context, sessionID, courseID string) error
	Clear(ctx context.Context, sessionID string) error
}
