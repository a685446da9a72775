package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store owns composite-key uniqueness and conditional-write atomicity;
// it is the sole concurrency-control primitive in the system. No external
// locks are ever taken.
type OrderRepository interface {
	// Add persists a new order if and only if no record exists for its
	// (owner, order id) composite key. A concurrent or earlier creation of
	// the same key fails with errs.DuplicateKeyError, atomically and without
	// side effects.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its composite identity. Returns
	// errs.ObjectNotFoundError when the order does not exist for this owner;
	// an order owned by a different owner is indistinguishable from absent.
	Get(ctx context.Context, ownerID string, orderID kernel.UUID) (*order.Order, error)

	// UpdateStatus applies a conditional status write: the new status is
	// persisted only if the record's current status still equals expected at
	// write time. A lost race fails with errs.WriteConflictError and no side
	// effects. Returns the updated order on success.
	UpdateStatus(ctx context.Context, ownerID string, orderID kernel.UUID, expected, next order.Status) (*order.Order, error)

	// ReplaceBody swaps the mutable order body under the same conditional
	// discipline as UpdateStatus; status and creation time are preserved.
	// Returns the updated order on success.
	ReplaceBody(ctx context.Context, ownerID string, orderID kernel.UUID, expected order.Status, body order.Body) (*order.Order, error)
}
