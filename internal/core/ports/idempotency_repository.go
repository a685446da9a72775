package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/idempotency"
)

// IdempotencyRepository defines the persistence contract for creation
// deduplication records. It is the sole reader and writer of idempotency
// state.
type IdempotencyRepository interface {
	// Reserve atomically claims the reservation's (owner, token) pair using
	// the store's native conditional-put primitive, never a read-then-write
	// sequence that would race under concurrent retries.
	//
	// Returns (nil, nil) when the claim won. When the token was already
	// claimed, returns the existing live record instead. An expired incumbent
	// is removed and the claim is retried, so expired records behave as if
	// the token was never seen.
	Reserve(ctx context.Context, reservation *idempotency.Reservation) (*idempotency.Reservation, error)

	// Commit persists the creation result attached to a previously won
	// reservation (via Reservation.Commit), making subsequent Reserve calls
	// for the token return it.
	Commit(ctx context.Context, reservation *idempotency.Reservation) error

	// PurgeExpired deletes records whose expiry has passed and reports how
	// many were removed. Invoked periodically to bound storage growth.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
