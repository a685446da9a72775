package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through acknowledgment to cancellation.
//
// Order follows these invariants:
//   - Identity is the composite (ownerID, orderID) and is immutable once created
//   - ownerID is the verified caller identity; it is never taken from client input
//   - createdAt is set once at creation (UTC, second precision) and never changes
//   - Status transitions follow the rules enforced by Status
//   - The body (restaurant, items, total) is the only mutable part
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// ownerID is the verified caller identity owning this order
	ownerID string

	// id is the unique order identifier within the owner partition
	id kernel.UUID

	// body holds the mutable order content
	body Body

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp (UTC, second precision)
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. Public creation writes orders
// directly in Sent status; the Placed status only exists for orders awaiting
// the external acknowledgment process.
//
// The creation timestamp is normalized to UTC and truncated to seconds to
// match the persisted and wire representation exactly.
func NewOrder(ownerID string, id kernel.UUID, body Body, now time.Time) (*Order, error) {
	order := &Order{
		status:        Sent,
		createdAt:     now.UTC().Truncate(time.Second),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOwnerID(ownerID),
		order.setID(id),
		order.setBody(body),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts an arbitrary (valid) status and creation time and performs full
// validation so corrupted records are rejected at the storage boundary.
func RestoreOrder(ownerID string, id kernel.UUID, body Body, status Status, createdAt time.Time) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOwnerID(ownerID),
		order.setID(id),
		order.setBody(body),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.createdAt = createdAt.UTC().Truncate(time.Second)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their composite identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.ownerID == other.ownerID && o.id.IsEqual(other.id)
}

// OwnerID returns the verified caller identity owning the order.
func (o *Order) OwnerID() string {
	return o.ownerID
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Body returns the current order body.
func (o *Order) Body() Body {
	return o.body
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Age returns the duration between the order's creation and now.
func (o *Order) Age(now time.Time) time.Duration {
	return now.UTC().Sub(o.createdAt)
}

// Acknowledge marks the order as acknowledged by the downstream process,
// transitioning Placed -> Sent. Any other current status is rejected.
func (o *Order) Acknowledge() error {
	newStatus, err := o.status.Acknowledge()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Canceled.
//
// Business rules enforced:
//   - The order must be in Sent status
//   - The order must be no older than CancelWindow at the time of the request
//
// On denial the order is left unchanged and the returned error carries the
// state machine's reason.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel(o.Age(now))
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Edit replaces the order body. Allowed only while the order is in Sent
// status; the status and creation timestamp are never touched.
func (o *Order) Edit(newBody Body) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}

	if err := newBody.Validate(); err != nil {
		return err
	}

	o.body = newBody
	return nil
}

func (o *Order) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBody(body Body) error {
	if err := body.Validate(); err != nil {
		return err
	}
	o.body = body
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
